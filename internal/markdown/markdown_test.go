package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestRender_RecoversFromRendererPanic(t *testing.T) {
	key := rendererKey{width: 20}

	rendererMu.Lock()
	prev, hadPrev := renderers[key]
	renderers[key] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[key] = prev
		} else {
			delete(renderers, key)
		}
		rendererMu.Unlock()
	}()

	out := Render(20, 0, false, []byte("hello\r\n"))
	if string(out) != "hello" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRender_PlainASCII(t *testing.T) {
	out := string(Render(60, 2, false, []byte("# Phrases\n\n- `by fri`\n- `tomorrow 9am`\n")))

	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes, got %q", out)
	}
	if !strings.Contains(out, "by fri") || !strings.Contains(out, "tomorrow 9am") {
		t.Fatalf("expected list items in output, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if line != "" && !strings.HasPrefix(line, "  ") {
			t.Fatalf("expected every line indented, got %q", line)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	if out := Render(60, 0, false, []byte(" \n\n")); out != nil {
		t.Fatalf("expected nil, got %q", out)
	}
}
