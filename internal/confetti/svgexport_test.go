package confetti

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSVGStructure(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 70)
	ps.Burst(400, 300, BurstCount)
	ps.Update(0.2)

	var sb strings.Builder
	WriteSVG(&sb, ps, 800, 600)
	doc := sb.String()

	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	live := len(ps.P)
	if got := strings.Count(doc, "<rect"); got != live {
		t.Errorf("document has %d rects, want one per live particle (%d)", got, live)
	}
	if !strings.Contains(doc, "stroke:#000000") {
		t.Error("missing black stroke style")
	}
	// Every fill must come from the fixed palette.
	for _, line := range strings.Split(doc, "\n") {
		idx := strings.Index(line, "fill:#")
		if idx < 0 {
			continue
		}
		hex := line[idx+5 : idx+12]
		switch hex {
		case "#D72D35", "#F2298A", "#F2C618", "#2ACC42", "#37CBE8":
		default:
			t.Errorf("unexpected fill colour %q", hex)
		}
	}
}

func TestWriteSVGEmptySystem(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 71)
	var sb strings.Builder
	WriteSVG(&sb, ps, 800, 600)
	doc := sb.String()
	if !strings.Contains(doc, "</svg>") {
		t.Fatal("empty system must still produce a closed document")
	}
	if strings.Contains(doc, "<rect") {
		t.Error("empty system must not emit rects")
	}
}

func TestExportSVGWritesFile(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 72)
	ps.Burst(10, 10, BurstCount)

	path := filepath.Join(t.TempDir(), "confetti.svg")
	if err := ExportSVG(path, ps, 800, 600); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("file does not contain an SVG document")
	}
}
