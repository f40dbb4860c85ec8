package jsonval

import (
	"strings"
	"testing"
)

func TestParsePreservesOrderAndLiterals(t *testing.T) {
	input := `{"zeta": 1920.0, "alpha": 1920, "mid": {"b": 2, "a": 1}}`

	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind != ObjectKind {
		t.Fatalf("kind = %v, want object", v.Kind)
	}

	keys := v.Obj.Keys()
	if len(keys) != 3 || keys[0] != "zeta" || keys[1] != "alpha" || keys[2] != "mid" {
		t.Fatalf("keys = %v, want [zeta alpha mid]", keys)
	}

	zeta, _ := v.Obj.Get("zeta")
	if string(zeta.Num) != "1920.0" {
		t.Errorf("zeta literal = %q, want 1920.0", zeta.Num)
	}
	alpha, _ := v.Obj.Get("alpha")
	if string(alpha.Num) != "1920" {
		t.Errorf("alpha literal = %q, want 1920", alpha.Num)
	}
}

func TestParseDuplicateKeyKeepsFirstPosition(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	keys := v.Obj.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v, want [a b]", keys)
	}
	a, _ := v.Obj.Get("a")
	if string(a.Num) != "3" {
		t.Errorf("a = %q, want 3 (last value wins)", a.Num)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"truncated", `{"a": `},
		{"trailing garbage", `{"a": 1} xyz`},
		{"second value", `{"a": 1} {"b": 2}`},
		{"bare word", `tscproj`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.input)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.input)
			}
		})
	}
}

func TestMarshalLayout(t *testing.T) {
	obj := NewObject()
	obj.Set("title", String("demo"))
	obj.Set("width", Int(1920))
	obj.Set("rect", Array(Int(0), Int(0), Int(1920), Int(1080)))
	obj.Set("empty", NewObject().Value())
	obj.Set("none", Array())

	got, err := Marshal(obj.Value())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := strings.Join([]string{
		`{`,
		`  "title": "demo",`,
		`  "width": 1920,`,
		`  "rect": [`,
		`    0,`,
		`    0,`,
		`    1920,`,
		`    1080`,
		`  ],`,
		`  "empty": {},`,
		`  "none": []`,
		`}`,
	}, "\n")

	if string(got) != want {
		t.Errorf("Marshal output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRoundTripBytes(t *testing.T) {
	input := strings.Join([]string{
		`{`,
		`  "version": "9.0",`,
		`  "editRate": 705600000,`,
		`  "width": 1920.0,`,
		`  "unknownField": {`,
		`    "keep": [`,
		`      1,`,
		`      2.5,`,
		`      "三",`,
		`      null,`,
		`      true`,
		`    ]`,
		`  }`,
		`}`,
	}, "\n")

	v, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip changed bytes:\n%s\nwant:\n%s", out, input)
	}
}

func TestMarshalStringEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{`quote"and\slash`, `"quote\"and\\slash"`},
		{"ctrl\x01char", `"ctrl\u0001char"`},
		{"héllo 世界", `"héllo 世界"`},
	}
	for _, tc := range cases {
		got, err := Marshal(String(tc.in))
		if err != nil {
			t.Fatalf("Marshal(%q): %v", tc.in, err)
		}
		if string(got) != tc.want {
			t.Errorf("Marshal(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMarshalRejectsInvalid(t *testing.T) {
	if _, err := Marshal(Value{}); err == nil {
		t.Error("Marshal of zero Value succeeded, want error")
	}
}
