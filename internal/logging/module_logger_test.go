package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "portfolio.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = IngestLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != ingestModule {
		t.Fatalf("expected module %s, got %v", ingestModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != ingestModule {
		t.Fatalf("expected module field %s, got %v", ingestModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestCommandsLoggerAppendsName(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = CommandsLogger(provider, " build ")
	_ = CommandsLogger(provider, "")
	want := []string{commandsModule + ".build", commandsModule}
	if len(provider.requested) != 2 || provider.requested[0] != want[0] || provider.requested[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, provider.requested)
	}
}

func TestWithSourceContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}
	WithSourceContext(rec, " projects/a.yaml ", "", "render")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	got := rec.fields[0]
	if got[fieldSourcePath] != "projects/a.yaml" || got[fieldStage] != "render" {
		t.Fatalf("unexpected fields: %v", got)
	}
	if _, ok := got[fieldKind]; ok {
		t.Fatalf("empty kind must be skipped: %v", got)
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"build": "1", "a": 1})
	ctx = ContextWithFields(ctx, map[string]any{"a": 2})

	fields := ContextFields(ctx)
	if fields["build"] != "1" || fields["a"] != 2 {
		t.Fatalf("unexpected merged fields: %v", fields)
	}
	fields["build"] = "mutated"
	if ContextFields(ctx)["build"] != "1" {
		t.Fatalf("ContextFields must return a copy")
	}
}
