package tracing

import (
	"context"
	"fmt"
	"time"

	"campfire/settings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var tp *sdktrace.TracerProvider

// Init 初始化 OpenTelemetry TracerProvider（OTLP gRPC 上报）
// 未启用时直接返回，otelgin 等插件退化为 no-op
func Init(cfg *settings.TraceConfig, serviceName string) error {
	if cfg == nil || !cfg.Enable {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return fmt.Errorf("create otlp exporter failed: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return fmt.Errorf("create otel resource failed: %w", err)
	}

	tp = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return nil
}

// Shutdown 刷新并关闭 TracerProvider
func Shutdown(ctx context.Context) {
	if tp == nil {
		return
	}
	_ = tp.Shutdown(ctx)
}
