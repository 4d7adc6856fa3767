package ast

import (
	"testing"
)

// Babel-style dump of:
//
//	import def, { a as b } from "m" with { type: "json" };
//	const x = 1;
//	export default class Foo {}
//	export * as ns from "n";
const fixture = `{
  "type": "File",
  "start": 0, "end": 140,
  "program": {
    "type": "Program",
    "start": 0, "end": 140,
    "body": [
      {
        "type": "ImportDeclaration",
        "start": 0, "end": 55,
        "importKind": "value",
        "specifiers": [
          {
            "type": "ImportDefaultSpecifier",
            "start": 7, "end": 10,
            "local": {"type": "Identifier", "start": 7, "end": 10, "name": "def"}
          },
          {
            "type": "ImportSpecifier",
            "start": 14, "end": 20,
            "imported": {"type": "Identifier", "start": 14, "end": 15, "name": "a"},
            "local": {"type": "Identifier", "start": 19, "end": 20, "name": "b"},
            "importKind": "value"
          }
        ],
        "source": {
          "type": "StringLiteral",
          "start": 28, "end": 31,
          "value": "m",
          "extra": {"raw": "\"m\""}
        },
        "attributes": [
          {
            "type": "ImportAttribute",
            "start": 39, "end": 52,
            "key": {"type": "Identifier", "start": 39, "end": 43, "name": "type"},
            "value": {"type": "StringLiteral", "start": 45, "end": 51, "value": "json", "extra": {"raw": "\"json\""}}
          }
        ]
      },
      {
        "type": "VariableDeclaration",
        "start": 56, "end": 68,
        "kind": "const"
      },
      {
        "type": "ExportDefaultDeclaration",
        "start": 69, "end": 96,
        "declaration": {"type": "ClassDeclaration", "start": 84, "end": 96}
      },
      {
        "type": "ExportAllDeclaration",
        "start": 97, "end": 121,
        "exported": {"type": "Identifier", "start": 109, "end": 111, "name": "ns"},
        "source": {"type": "StringLiteral", "start": 117, "end": 120, "value": "n", "extra": {"raw": "\"n\""}}
      }
    ]
  },
  "comments": [
    {"type": "CommentBlock", "value": " c ", "start": 122, "end": 129}
  ]
}`

func TestDecodeFile(t *testing.T) {
	file, err := DecodeFile([]byte(fixture))
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	if len(file.Decls) != 3 {
		t.Fatalf("decls = %d, want 3", len(file.Decls))
	}
	if len(file.Opaque) != 1 {
		t.Fatalf("opaque statements = %d, want 1", len(file.Opaque))
	}
	if len(file.Comments) != 1 || !file.Comments[0].Block {
		t.Fatalf("comments not decoded: %+v", file.Comments)
	}

	imp := file.Decls[0]
	if imp.Kind != ImportDecl {
		t.Fatalf("kind = %v, want ImportDeclaration", imp.Kind)
	}
	if imp.Source == nil || imp.Source.Value != "m" || imp.Source.Raw != `"m"` {
		t.Fatalf("source not decoded: %+v", imp.Source)
	}
	if len(imp.Specifiers) != 2 {
		t.Fatalf("specifiers = %d, want 2", len(imp.Specifiers))
	}
	if imp.Specifiers[0].Kind != ImportDefaultSpec || imp.Specifiers[0].Local.Value != "def" {
		t.Fatalf("default specifier not decoded: %+v", imp.Specifiers[0])
	}
	named := imp.Specifiers[1]
	if named.Kind != ImportSpec || named.Imported.Value != "a" || named.Local.Value != "b" {
		t.Fatalf("named specifier not decoded: %+v", named)
	}
	if len(imp.Attributes) != 1 {
		t.Fatalf("attributes = %d, want 1", len(imp.Attributes))
	}
	attr := imp.Attributes[0]
	if attr.Key.Value != "type" || attr.Value.Value != "json" || attr.Value.Raw != `"json"` {
		t.Fatalf("attribute not decoded: key=%+v value=%+v", attr.Key, attr.Value)
	}

	def := file.Decls[1]
	if def.Kind != ExportDefaultDecl || !def.Default {
		t.Fatalf("default export not decoded: %+v", def)
	}
	if def.Inner == nil || def.Inner.Kind != NestedClass {
		t.Fatalf("nested class not classified: %+v", def.Inner)
	}
	if !def.Inner.Kind.Structural() {
		t.Fatalf("class must be structural")
	}

	all := file.Decls[2]
	if all.Kind != ExportAllDecl || all.Exported == nil || all.Exported.Value != "ns" {
		t.Fatalf("export all not decoded: %+v", all)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := DecodeFile([]byte(`{"type": "File"}`)); err == nil {
		t.Fatalf("File without program must fail")
	}
	if _, err := DecodeFile([]byte(`{"type": "Identifier"}`)); err == nil {
		t.Fatalf("non-Program root must fail")
	}
	if _, err := DecodeFile([]byte(`not json`)); err == nil {
		t.Fatalf("invalid JSON must fail")
	}
}

func TestDecodeBareProgram(t *testing.T) {
	src := `{"type": "Program", "start": 0, "end": 0, "body": []}`
	file, err := DecodeFile([]byte(src))
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if len(file.Decls) != 0 || len(file.Opaque) != 0 {
		t.Fatalf("empty program must decode empty, got %+v", file)
	}
}

func TestDecodeNegativeOffsetFails(t *testing.T) {
	src := `{"type": "Program", "start": -1, "end": 0, "body": []}`
	if _, err := DecodeFile([]byte(src)); err == nil {
		t.Fatalf("negative offsets must fail decoding")
	}
}

func TestNestedKindClassification(t *testing.T) {
	cases := map[string]NestedKind{
		"ClassDeclaration":       NestedClass,
		"FunctionDeclaration":    NestedFunction,
		"TSInterfaceDeclaration": NestedInterface,
		"TSEnumDeclaration":      NestedEnum,
		"DeclareClass":           NestedDeclareClass,
		"TSDeclareFunction":      NestedDeclareFunction,
		"BinaryExpression":       NestedOther,
		"ClassExpression":        NestedOther,
	}
	for typ, want := range cases {
		if got := nestedKind(typ); got != want {
			t.Fatalf("nestedKind(%q) = %v, want %v", typ, got, want)
		}
	}
}
