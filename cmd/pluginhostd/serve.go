package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chronolens/pluginhost/application/catalog"
	"github.com/chronolens/pluginhost/application/resolver"
	"github.com/chronolens/pluginhost/domain/ports"
	"github.com/chronolens/pluginhost/host/registry"
	"github.com/chronolens/pluginhost/infrastructure/codeserver"
	"github.com/chronolens/pluginhost/infrastructure/fsys"
	"github.com/chronolens/pluginhost/infrastructure/rewrite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve extension frontends over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("listen", "", "listen address (default 127.0.0.1:8765)")
	serveCmd.Flags().String("extensions-root", "", "extensions installation root (default: per-platform app data dir)")
	serveCmd.Flags().String("host-root", "", "host application source root, enables host capability imports")
	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	_ = viper.BindPFlag("extensions_root", serveCmd.Flags().Lookup("extensions-root"))
	_ = viper.BindPFlag("host_root", serveCmd.Flags().Lookup("host-root"))
}

func runServe(ctx context.Context) error {
	extRoot := viper.GetString("extensions_root")
	if extRoot == "" {
		var err error
		extRoot, err = fsys.ExtensionsRoot()
		if err != nil {
			return fmt.Errorf("resolving extensions root: %w", err)
		}
	}

	handler, err := buildServer(extRoot, viper.GetString("host_root"))
	if err != nil {
		return err
	}

	addr := viper.GetString("listen")
	slog.Info("serving extension frontends",
		"listen", addr, "extensions_root", extRoot)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// buildServer wires one development session: registry, catalog, resolver,
// rewriting transformer, and the code server.
func buildServer(extRoot, hostRoot string) (http.Handler, error) {
	reg := registry.New()

	var cat ports.CapabilityCatalog
	if hostRoot != "" {
		c, err := catalog.NewCatalog(catalog.WithHostRoot(hostRoot))
		if err != nil {
			return nil, fmt.Errorf("building capability catalog: %w", err)
		}
		cat = c
	} else {
		slog.Warn("no host root configured, host capability imports will not resolve")
	}

	resOpts := []resolver.ResolverOption{
		resolver.WithRegistry(reg),
		resolver.WithExtensionsRoot(extRoot),
	}
	if cat != nil {
		resOpts = append(resOpts, resolver.WithCatalog(cat))
	}
	res, err := resolver.NewResolver(resOpts...)
	if err != nil {
		return nil, fmt.Errorf("building resolver: %w", err)
	}

	tr, err := rewrite.NewTransformer(
		rewrite.WithResolver(res),
		rewrite.WithExtensionsRoot(extRoot),
	)
	if err != nil {
		return nil, fmt.Errorf("building transformer: %w", err)
	}

	srvOpts := []codeserver.ServerOption{
		codeserver.WithExtensionsRoot(extRoot),
		codeserver.WithRegistry(reg),
		codeserver.WithTransformer(tr),
	}
	if cat != nil {
		srvOpts = append(srvOpts,
			codeserver.WithCatalog(cat),
			codeserver.WithCatalogSchema(catalog.EntrySchema),
		)
	}
	return codeserver.NewServer(srvOpts...)
}
