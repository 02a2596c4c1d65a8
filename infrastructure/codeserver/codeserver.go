// Package codeserver serves extension frontend files over HTTP, driving
// them through the code transformer on the way out. It is a mountable
// http.Handler: requests that do not match its URL contract are handed to
// the next handler untouched.
package codeserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/chronolens/pluginhost/application/stubgen"
	"github.com/chronolens/pluginhost/domain/entities"
	derrors "github.com/chronolens/pluginhost/domain/errors"
	"github.com/chronolens/pluginhost/domain/ports"
)

const (
	// PathPrefix is where extension assets are served:
	// /plugins/{author}/{extensionId}/frontend/{relativeFilePath}.
	PathPrefix = "/plugins/"

	// VirtualPathPrefix is where registered virtual modules are served.
	// The identifier is path-escaped into a single segment. Kept equal to
	// rewrite.DefaultServePrefix so rewritten specifiers round-trip.
	VirtualPathPrefix = "/plugins/-/v/"

	// CatalogPath lists the host capability catalog for debugging.
	CatalogPath = "/plugins/-/catalog"
)

// scriptContentType is served for anything transformable. The fallback on
// transform failure uses it too, so the browser still executes the module.
const scriptContentType = "text/javascript; charset=utf-8"

// contentTypes maps non-script extensions to response content types.
// Unknown extensions default to plain text.
var contentTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".html": "text/html; charset=utf-8",
}

// serverConfig holds configuration for the Server.
type serverConfig struct {
	extensionsRoot string
	registry       ports.ModuleRegistry
	transformer    ports.CodeTransformer
	catalog        ports.CapabilityCatalog
	files          ports.FileChecker
	next           http.Handler
	logger         *slog.Logger
	schema         func() ([]byte, error)
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		// Identity transform: serve sources as-is when the host injects
		// no transformer.
		transformer: ports.TransformerFunc(
			func(_ context.Context, _ entities.VirtualModuleID, source string) (string, error) {
				return source, nil
			}),
		files: ports.FileCheckerFunc(func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		}),
		next:   http.NotFoundHandler(),
		logger: slog.Default(),
	}
}

// ServerOption configures a Server instance.
type ServerOption func(*serverConfig)

// WithExtensionsRoot sets the extensions installation root. Required.
func WithExtensionsRoot(root string) ServerOption {
	return func(c *serverConfig) {
		c.extensionsRoot = root
	}
}

// WithRegistry sets the session's virtual module registry. Required.
func WithRegistry(r ports.ModuleRegistry) ServerOption {
	return func(c *serverConfig) {
		c.registry = r
	}
}

// WithTransformer sets the code transformer. Defaults to identity.
func WithTransformer(t ports.CodeTransformer) ServerOption {
	return func(c *serverConfig) {
		c.transformer = t
	}
}

// WithCatalog enables the catalog introspection endpoint.
func WithCatalog(cat ports.CapabilityCatalog) ServerOption {
	return func(c *serverConfig) {
		c.catalog = cat
	}
}

// WithCatalogSchema sets the schema generator for the catalog endpoint.
func WithCatalogSchema(fn func() ([]byte, error)) ServerOption {
	return func(c *serverConfig) {
		c.schema = fn
	}
}

// WithFileChecker sets the existence probe. Tests inject fakes here.
func WithFileChecker(fc ports.FileChecker) ServerOption {
	return func(c *serverConfig) {
		c.files = fc
	}
}

// WithNext sets the handler that receives declined requests.
func WithNext(next http.Handler) ServerOption {
	return func(c *serverConfig) {
		c.next = next
	}
}

// WithLogger sets the server's logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(c *serverConfig) {
		c.logger = l
	}
}

// Server implements the extension code-serving URL contract.
type Server struct {
	config serverConfig
}

// NewServer creates a Server with the given options.
func NewServer(opts ...ServerOption) (*Server, error) {
	cfg := defaultServerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.extensionsRoot == "" {
		return nil, fmt.Errorf("codeserver: extensions root is required")
	}
	if cfg.registry == nil {
		return nil, fmt.Errorf("codeserver: module registry is required")
	}
	return &Server{config: cfg}, nil
}

var _ http.Handler = (*Server)(nil)

// ServeHTTP routes a request. Non-matching paths are declined to the next
// handler; everything served here is read-only and uncacheable so source
// edits are observed on the next request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if !strings.HasPrefix(path, PathPrefix) {
		s.config.next.ServeHTTP(w, r)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		jsonResponse(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	switch {
	case strings.HasPrefix(r.URL.EscapedPath(), VirtualPathPrefix):
		s.serveVirtual(w, r)
	case path == CatalogPath:
		s.serveCatalog(w)
	default:
		s.serveAsset(w, r)
	}
}

// serveAsset handles /plugins/{author}/{extensionId}/frontend/{path...}.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, PathPrefix)
	parts := strings.SplitN(rest, "/", 4)
	if len(parts) < 4 || parts[2] != entities.FrontendSubdir ||
		parts[0] == "" || parts[1] == "" || parts[3] == "" {
		// Not our URL shape; let the outer handler produce its own 404.
		s.config.next.ServeHTTP(w, r)
		return
	}

	req := entities.AssetRequest{
		Author:       parts[0],
		ExtensionID:  parts[1],
		RelativePath: parts[3],
	}

	disk, err := req.DiskPath(s.config.extensionsRoot)
	if err != nil || !s.config.files.Exists(disk) {
		notFound := &derrors.AssetNotFoundError{
			Author:        req.Author,
			ExtensionID:   req.ExtensionID,
			RelativePath:  req.RelativePath,
			AttemptedPath: disk,
		}
		s.config.logger.Info("extension asset not found", "error", notFound)
		jsonResponse(w, http.StatusNotFound, map[string]string{
			"error":     notFound.Error(),
			"author":    notFound.Author,
			"extension": notFound.ExtensionID,
			"path":      notFound.RelativePath,
			"attempted": notFound.AttemptedPath,
		})
		return
	}

	raw, err := os.ReadFile(disk)
	if err != nil {
		jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	noStore(w)
	if !entities.IsScriptPath(disk) {
		w.Header().Set("Content-Type", contentTypeFor(disk))
		_, _ = w.Write(raw)
		return
	}

	id := s.config.registry.GetOrCreate(disk, "", entities.ExtensionAssetID(req.RootRelative()),
		entities.RealFileTarget(disk))
	s.serveTransformed(r.Context(), w, id, raw)
}

// serveVirtual handles /plugins/-/v/{escaped-virtual-id}.
func (s *Server) serveVirtual(w http.ResponseWriter, r *http.Request) {
	escaped := strings.TrimPrefix(r.URL.EscapedPath(), VirtualPathPrefix)
	idText, err := url.PathUnescape(escaped)
	if err != nil || idText == "" {
		jsonResponse(w, http.StatusNotFound, map[string]string{"error": "malformed virtual module id"})
		return
	}

	id := entities.VirtualModuleID(idText)
	target, ok := s.config.registry.Resolve(id)
	if !ok {
		unknown := &derrors.UnknownModuleError{ID: id}
		s.config.logger.Info("virtual module not registered", "error", unknown)
		jsonResponse(w, http.StatusNotFound, map[string]string{
			"error":  unknown.Error(),
			"module": idText,
		})
		return
	}

	noStore(w)
	switch target.Kind {
	case entities.TargetStub:
		w.Header().Set("Content-Type", scriptContentType)
		_, _ = fmt.Fprint(w, stubgen.Synthesize(target.Specifier))

	case entities.TargetRealFile, entities.TargetHostCapability:
		raw, err := os.ReadFile(target.Path)
		if err != nil {
			jsonResponse(w, http.StatusNotFound, map[string]string{
				"error":  "virtual module target missing",
				"module": idText,
			})
			return
		}
		if target.Kind == entities.TargetRealFile && entities.IsScriptPath(target.Path) {
			s.serveTransformed(r.Context(), w, id, raw)
			return
		}
		// Host capability sources load through the host's own pipeline;
		// serve them untouched.
		w.Header().Set("Content-Type", contentTypeForScriptOr(target.Path))
		_, _ = w.Write(raw)
	}
}

// serveTransformed runs the transformer and falls back to the raw source
// on failure. The request still succeeds either way; bare imports in the
// fallback stay unresolved until extension execution.
func (s *Server) serveTransformed(ctx context.Context, w http.ResponseWriter, id entities.VirtualModuleID, raw []byte) {
	w.Header().Set("Content-Type", scriptContentType)
	out, err := s.config.transformer.Transform(ctx, id, string(raw))
	if err != nil {
		s.config.logger.Warn("serving raw source after failed transform",
			"error", &derrors.TransformError{ID: id, Err: err})
		_, _ = w.Write(raw)
		return
	}
	_, _ = fmt.Fprint(w, out)
}

// serveCatalog handles /plugins/-/catalog.
func (s *Server) serveCatalog(w http.ResponseWriter) {
	if s.config.catalog == nil {
		jsonResponse(w, http.StatusNotFound, map[string]string{"error": "catalog not configured"})
		return
	}
	body := map[string]any{"capabilities": s.config.catalog.Names()}
	if s.config.schema != nil {
		if schema, err := s.config.schema(); err == nil {
			body["schema"] = json.RawMessage(schema)
		}
	}
	noStore(w)
	jsonResponse(w, http.StatusOK, body)
}

func contentTypeFor(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		if ct, ok := contentTypes[strings.ToLower(path[i:])]; ok {
			return ct
		}
	}
	return "text/plain; charset=utf-8"
}

// contentTypeForScriptOr returns the script type for script paths and the
// table type otherwise.
func contentTypeForScriptOr(path string) string {
	if entities.IsScriptPath(path) {
		return scriptContentType
	}
	return contentTypeFor(path)
}

func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
