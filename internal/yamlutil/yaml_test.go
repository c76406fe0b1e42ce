package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-safemd/internal/yamlutil"
)

type extensions struct {
	HardWrap bool   `yaml:"hardWrap"`
	Tables   bool   `yaml:"tables"`
	Style    string `yaml:"style"`
	MaxBytes int    `yaml:"maxBytes"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict_Inputs - Parses YAML into Go structs
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_Inputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		want    extensions
	}{
		{
			name: "valid YAML",
			data: []byte("hardWrap: true\ntables: true\nstyle: monokai\nmaxBytes: 4096"),
			dest: &extensions{},
			want: extensions{HardWrap: true, Tables: true, Style: "monokai", MaxBytes: 4096},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &extensions{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &extensions{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("style: github"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UnmarshalStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
			}
			if got := *tt.dest.(*extensions); got != tt.want {
				t.Errorf("UnmarshalStrict() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict_SyntaxError(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("style: [unclosed"), &extensions{})
	if err == nil {
		t.Fatal("UnmarshalStrict() error = nil, want syntax error")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil prefix", err)
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		var got extensions
		if err := yamlutil.UnmarshalStrict([]byte("tables: true"), &got); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if !got.Tables {
			t.Error("Tables = false, want true")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("tables: true\nfootnotes: true"), &extensions{})
		if err == nil {
			t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
		}
		if !strings.Contains(err.Error(), "footnotes") {
			t.Errorf("error = %q, want it to name the field", err)
		}
	})

	t.Run("nil data", func(t *testing.T) {
		t.Parallel()

		if err := yamlutil.UnmarshalStrict(nil, &extensions{}); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("UnmarshalStrict() error = %v, want ErrNilData", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Reads and parses YAML from a reader
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("reads whole input", func(t *testing.T) {
		t.Parallel()

		var got extensions
		if err := yamlutil.DecodeStrict(strings.NewReader("style: dracula\nmaxBytes: 10"), &got); err != nil {
			t.Fatalf("DecodeStrict() unexpected error: %v", err)
		}
		if got.Style != "dracula" || got.MaxBytes != 10 {
			t.Errorf("DecodeStrict() = %+v", got)
		}
	})

	t.Run("oversized input rejected", func(t *testing.T) {
		t.Parallel()

		input := "style: " + strings.Repeat("x", yamlutil.MaxInputSize)
		err := yamlutil.DecodeStrict(strings.NewReader(input), &extensions{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("DecodeStrict() error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("empty reader", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.DecodeStrict(strings.NewReader(""), &extensions{})
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("DecodeStrict() error = %v, want ErrNilData", err)
		}
	})
}
