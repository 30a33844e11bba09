// Package tracing builds the optional OTLP tracer provider, grounded on
// kkohtaka-kubernetesimal's observability/tracing package and wired from
// APP_OTLP_ENDPOINT instead of CLI flags.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	ctrl "sigs.k8s.io/controller-runtime"
)

var (
	tracingLog = ctrl.Log.WithName("tracing")

	providerResource *resource.Resource = resource.Default()
)

func init() {
	if r, err := resource.Merge(
		providerResource,
		resource.NewSchemaless(
			attribute.String(string(semconv.ServiceNameKey), "github-operator"),
		),
	); err != nil {
		tracingLog.Error(err, "unable to merge trace provider resources")
	} else {
		providerResource = r
	}
}

// NewTracerProvider returns a no-op-backed TracerProvider if endpoint is
// empty, or one exporting spans over OTLP/gRPC to endpoint. The provider is
// shut down when ctx is done.
func NewTracerProvider(ctx context.Context, endpoint string) (*tracesdk.TracerProvider, error) {
	var opts []tracesdk.TracerProviderOption

	if endpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(endpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("starting OTLP exporter: %w", err)
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	opts = append(opts, tracesdk.WithResource(providerResource))
	provider := tracesdk.NewTracerProvider(opts...)

	go func() {
		<-ctx.Done()
		if err := provider.Shutdown(context.Background()); err != nil {
			tracingLog.Error(err, "unable to shutdown OTLP provider")
		}
	}()

	return provider, nil
}

type contextKey struct{}

// FromContext returns a tracer with predefined values from a context.Context.
func FromContext(ctx context.Context) trace.Tracer {
	if v, ok := ctx.Value(contextKey{}).(trace.Tracer); ok {
		return v
	}
	return otel.GetTracerProvider().Tracer("")
}

// NewContext returns a new context derived from ctx that embeds tracer.
func NewContext(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, contextKey{}, tracer)
}
