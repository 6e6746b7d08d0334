package reader

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PreflightInfo summarizes a structural probe of a PDF file.
type PreflightInfo struct {
	PageCount int
	HasImages bool
	Encrypted bool
}

// Preflight validates the file's structure with pdfcpu before extraction.
// A validation error here usually means the main reader will fail too, so
// callers can surface a better message up front.
func Preflight(path string) (PreflightInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return PreflightInfo{}, err
	}
	defer f.Close()

	conf := pdfcpumodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return PreflightInfo{}, fmt.Errorf("validate %s: %w", path, err)
	}

	info := PreflightInfo{
		PageCount: ctx.PageCount,
		HasImages: hasImageStreams(ctx),
	}
	if ctx.XRefTable != nil && ctx.XRefTable.Encrypt != nil {
		info.Encrypted = true
	}
	return info, nil
}

// hasImageStreams reports whether any page references an image XObject.
func hasImageStreams(ctx *pdfcpumodel.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}

	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, ok := subtype.(types.Name); ok && name.Value() == "Image" {
				return true
			}
		}
	}
	return false
}
