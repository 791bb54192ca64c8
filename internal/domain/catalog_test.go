package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/impactplan/internal/model"
)

func entries() []m.CatalogEntry {
	return []m.CatalogEntry{
		{Case: m.NewCase("s3", "minio_s3")},
		{Case: m.NewCase("s3", "aws_s3"), RequiresSecrets: true},
		{Case: m.NewCase("fs", "local_fs")},
		{Case: m.NewCase("gcs", "gcs"), RequiresSecrets: true},
	}
}

func TestProvidedCases_WithoutSecrets(t *testing.T) {
	got := ProvidedCases(entries(), false)

	assert.Equal(t, []m.Case{
		m.NewCase("fs", "local_fs"),
		m.NewCase("s3", "minio_s3"),
	}, got)
}

func TestProvidedCases_WithSecrets(t *testing.T) {
	got := ProvidedCases(entries(), true)

	assert.Equal(t, []m.Case{
		m.NewCase("fs", "local_fs"),
		m.NewCase("gcs", "gcs"),
		m.NewCase("s3", "aws_s3"),
		m.NewCase("s3", "minio_s3"),
	}, got)
}

func TestGateSecrets_KeepsMetadata(t *testing.T) {
	in := []m.CatalogEntry{{Case: m.NewCase("fs", "local_fs"), Name: "local fs"}}

	got := GateSecrets(in, false)

	assert.Equal(t, in, got)
}
