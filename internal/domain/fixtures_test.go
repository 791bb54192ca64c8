package domain

import (
	m "github.com/mouse-blink/impactplan/internal/model"
)

// testCatalog is sorted by service, then setup.
func testCatalog() []m.Case {
	return []m.Case{
		m.NewCase("azblob", "azblob_azurite"),
		m.NewCase("fs", "local_fs"),
		m.NewCase("fs", "local_fs_with_tmp"),
		m.NewCase("gcs", "gcs"),
		m.NewCase("s3", "aws_s3"),
		m.NewCase("s3", "minio_s3"),
	}
}

func casesOf(cases []m.Case, service string) []m.Case {
	out := []m.Case{}
	for _, c := range cases {
		if c.Service == service {
			out = append(out, c)
		}
	}

	return out
}

func surfaceOf(core bool, all bool, langs []m.Language, services ...string) m.Surface {
	s := m.NewSurface()
	s.Core = core
	s.AllServices = all

	for _, lang := range langs {
		s.Bindings[lang] = true
	}

	for _, service := range services {
		s.Services[service] = struct{}{}
	}

	return s
}
