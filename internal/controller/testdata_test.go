package controller

import (
	"github.com/mouse-blink/impactplan/internal/domain"
	m "github.com/mouse-blink/impactplan/internal/model"
)

func sampleResult() domain.Result {
	surface := m.NewSurface()
	surface.Core = true
	surface.Bindings[m.LanguageJava] = true
	surface.Services["fs"] = struct{}{}

	core := []m.Case{m.NewCase("fs", "local_fs"), m.NewCase("fs", "local_fs_with_tmp")}
	bindings := map[m.Language][]m.Case{m.LanguageJava: {m.NewCase("fs", "local_fs")}}

	return domain.Result{
		Surface: surface,
		Catalog: core,
		Plan:    domain.Assemble(core, bindings, domain.DefaultRunners()),
	}
}
