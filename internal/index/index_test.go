package index

import (
	"testing"

	"github.com/grove-tools/litbuild/internal/notebook"
	"github.com/grove-tools/litbuild/internal/project"
)

func TestBuildAndGet(t *testing.T) {
	headered := &notebook.Section{Code: "Z", Docs: "# Y", Header: "# Y"}
	moduleA := &project.Module{
		Path:     "a.py.lpnb",
		Sections: []*notebook.Section{headered},
	}
	moduleNoHeaders := &project.Module{
		Path:     "b.py.lpnb",
		Sections: []*notebook.Section{{Code: "c", Docs: "no header here"}},
	}
	plainFile := &project.Module{Path: "raw.txt"}

	proj := &project.Project{Modules: []*project.Module{moduleA, moduleNoHeaders, plainFile}}
	idx := Build(proj)

	section, ok := idx.Get("a", "Y")
	if !ok || section.Code != "Z" {
		t.Fatalf("Get(a, Y) = %+v, %v, want Z section", section, ok)
	}

	if _, ok := idx.Get("b", "anything"); ok {
		t.Errorf("module with no headered sections should be absent from index")
	}

	if _, ok := idx.Get("raw", "anything"); ok {
		t.Errorf("sectionless module should be absent from index")
	}
}
