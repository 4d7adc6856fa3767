package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"esfmt/internal/ast"
)

const astSuffix = ".ast.json"

// input is one AST dump paired with the source text its spans index into.
type input struct {
	astPath string
	srcPath string // empty when the source text was embedded in the dump
	astData []byte
	src     []byte
	file    *ast.File
}

// sourceCarrier is the optional wrapper field for dumps that embed the
// original text instead of relying on a sibling file.
type sourceCarrier struct {
	SourceText *string `json:"sourceText"`
}

func loadInput(astPath string) (*input, error) {
	astData, err := os.ReadFile(astPath)
	if err != nil {
		return nil, err
	}

	in := &input{astPath: astPath, astData: astData}

	var carrier sourceCarrier
	if err := json.Unmarshal(astData, &carrier); err != nil {
		return nil, fmt.Errorf("%s: %w", astPath, err)
	}
	if carrier.SourceText != nil {
		in.src = []byte(*carrier.SourceText)
	} else {
		srcPath, err := findSourcePath(astPath)
		if err != nil {
			return nil, err
		}
		in.srcPath = srcPath
		in.src, err = readSource(srcPath)
		if err != nil {
			return nil, err
		}
	}

	in.file, err = ast.DecodeFile(astData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", astPath, err)
	}
	return in, nil
}

// findSourcePath maps `app.js.ast.json` to the sibling `app.js`.
func findSourcePath(astPath string) (string, error) {
	if !strings.HasSuffix(astPath, astSuffix) {
		return "", fmt.Errorf("%s: expected an %s input", astPath, astSuffix)
	}
	srcPath := strings.TrimSuffix(astPath, astSuffix)
	if _, err := os.Stat(srcPath); err != nil {
		return "", fmt.Errorf("%s: missing source file %s: %w", astPath, srcPath, err)
	}
	return srcPath, nil
}

// readSource loads source text, dropping a UTF-8 BOM. AST offsets are
// produced by parsers that strip the BOM before counting, so the raw bytes
// must match. Nothing else is normalized: CRLF stays as written.
func readSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := unicode.UTF8BOM.NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("%s: decode source: %w", path, err)
	}
	return out, nil
}
