package ports

import (
	"context"

	"github.com/chronolens/pluginhost/domain/entities"
)

// CodeTransformer turns extension source text into executable text, rewriting
// import specifiers as it goes. The host application injects its own
// transformer; the runtime only requires this contract.
type CodeTransformer interface {
	// Transform processes the source registered under id. A non-nil error is
	// a TransformFailure: callers fall back to the untransformed source.
	Transform(ctx context.Context, id entities.VirtualModuleID, source string) (string, error)
}

// TransformerFunc adapts a plain function to the CodeTransformer interface.
type TransformerFunc func(ctx context.Context, id entities.VirtualModuleID, source string) (string, error)

// Transform implements CodeTransformer.
func (f TransformerFunc) Transform(ctx context.Context, id entities.VirtualModuleID, source string) (string, error) {
	return f(ctx, id, source)
}
