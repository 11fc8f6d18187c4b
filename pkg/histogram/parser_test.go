package histogram

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const twoSamples = `#Sample: N1
FragmentLength,Count
36,1
41,6
#Sample: T1
FragmentLength,Count
53,2
54,10
`

func TestParse_TwoSamples(t *testing.T) {
	ds, err := Parse(twoSamples)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := Dataset{
		"N1": {41: 6},
		"T1": {54: 10},
	}
	if !reflect.DeepEqual(ds, want) {
		t.Errorf("Parse = %v, want %v", ds, want)
	}
}

func TestParse_Deterministic(t *testing.T) {
	first, err := Parse(twoSamples)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := Parse(twoSamples)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parse differs: %v vs %v", first, second)
	}
}

func TestParse_Threshold(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want Distribution
	}{
		{name: "below threshold dropped", row: "100,3", want: Distribution{}},
		{name: "one below threshold dropped", row: "100,4", want: Distribution{}},
		{name: "threshold kept", row: "100,5", want: Distribution{100: 5}},
		{name: "above threshold kept", row: "100,6", want: Distribution{100: 6}},
		{name: "zero dropped", row: "100,0", want: Distribution{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse("#Sample: S\nFragmentLength,Count\n" + tt.row + "\n")
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if !reflect.DeepEqual(ds["S"], tt.want) {
				t.Errorf("S = %v, want %v", ds["S"], tt.want)
			}
		})
	}
}

func TestParse_EmptyDistributionRetained(t *testing.T) {
	ds, err := Parse("#Sample: quiet\nFragmentLength,Count\n10,1\n11,2\n12,4\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	d, ok := ds["quiet"]
	if !ok {
		t.Fatal("sample with no retained rows is missing")
	}
	if len(d) != 0 {
		t.Errorf("quiet = %v, want empty distribution", d)
	}
}

func TestParse_RepeatedLengthLastWins(t *testing.T) {
	ds, err := Parse("#Sample: S\n100,7\n100,9\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := ds["S"][100]; got != 9 {
		t.Errorf("S[100] = %d, want 9", got)
	}
}

func TestParse_RepeatedLengthBelowThresholdKeepsEarlier(t *testing.T) {
	ds, err := Parse("#Sample: S\n100,7\n100,2\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := ds["S"][100]; got != 7 {
		t.Errorf("S[100] = %d, want 7", got)
	}
}

func TestParse_SampleNameKeepsRemainder(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "#Sample: N_SRR7890889", want: "N_SRR7890889"},
		{line: "#Sample: tumour sample 2", want: "tumour sample 2"},
		{line: "#Sample:  padded", want: " padded"},
		{line: "#Sample NoColon", want: "NoColon"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ds, err := Parse(tt.line + "\n")
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if _, ok := ds[tt.want]; !ok {
				t.Errorf("names = %v, want %q", ds.Names(), tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    string
	}{
		{
			name:    "duplicate sample in file",
			input:   "#Sample: A\n10,6\n#Sample: A\n20,7\n",
			wantErr: ErrDuplicateSample,
			line:    "line 3",
		},
		{
			name:    "duplicate sample with no retained rows",
			input:   "#Sample: A\n10,1\n#Sample: A\n",
			wantErr: ErrDuplicateSample,
			line:    "line 3",
		},
		{
			name:    "marker without separator",
			input:   "#Sample:\n",
			wantErr: ErrMalformedRecord,
			line:    "line 1",
		},
		{
			name:    "marker with empty name",
			input:   "#Sample: \n",
			wantErr: ErrMalformedRecord,
			line:    "line 1",
		},
		{
			name:    "not an integer",
			input:   "#Sample: A\nFragmentLength,Count\n10,abc\n",
			wantErr: ErrMalformedRecord,
			line:    "line 3",
		},
		{
			name:    "three fields",
			input:   "#Sample: A\n10,6,1\n",
			wantErr: ErrMalformedRecord,
			line:    "line 2",
		},
		{
			name:    "one field",
			input:   "#Sample: A\n10\n",
			wantErr: ErrMalformedRecord,
			line:    "line 2",
		},
		{
			name:    "negative length",
			input:   "#Sample: A\n-10,6\n",
			wantErr: ErrMalformedRecord,
			line:    "line 2",
		},
		{
			name:    "row before marker",
			input:   "FragmentLength,Count\n10,6\n",
			wantErr: ErrRowOutsideSample,
			line:    "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse = %v, want error", ds)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("error %q does not mention %q", err, tt.line)
			}
			if ds != nil {
				t.Errorf("dataset = %v, want nil on error", ds)
			}
		})
	}
}

func TestParse_RowOutsideSampleIsMalformed(t *testing.T) {
	_, err := Parse("10,6\n")
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("error = %v, want ErrMalformedRecord", err)
	}
}

func TestParse_BlankLinesAndCRLF(t *testing.T) {
	ds, err := Parse("#Sample: A\r\nFragmentLength,Count\r\n\r\n10,6\r\n\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := Dataset{"A": {10: 6}}
	if !reflect.DeepEqual(ds, want) {
		t.Errorf("Parse = %v, want %v", ds, want)
	}
}

func TestParse_WhitespaceOnlyLineIsMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "spaces", text: "#Sample: A\n   \n10,6\n"},
		{name: "tab", text: "#Sample: A\n\t\n"},
		{name: "before marker", text: "  \n#Sample: A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	ds, err := Parse("")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(ds) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty", ds)
	}
}

func TestParser_States(t *testing.T) {
	p := NewParser()
	if p.State() != StateAwaitingSample {
		t.Fatalf("initial state = %v, want StateAwaitingSample", p.State())
	}

	if err := p.Feed(HeaderLine); err != nil {
		t.Fatalf("header before marker: %v", err)
	}
	if p.State() != StateAwaitingSample {
		t.Errorf("state after header = %v, want StateAwaitingSample", p.State())
	}

	if err := p.Feed("#Sample: A"); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if p.State() != StateInSample || p.Sample() != "A" {
		t.Errorf("state = %v/%q, want InSample/A", p.State(), p.Sample())
	}

	if err := p.Feed("#Sample: B"); err != nil {
		t.Fatalf("second marker: %v", err)
	}
	if p.Sample() != "B" {
		t.Errorf("sample = %q, want B", p.Sample())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateAwaitingSample, "AwaitingSample"},
		{StateInSample, "InSample"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestParser_SamplesInDeclarationOrder(t *testing.T) {
	p := NewParser()
	if err := p.Consume(strings.NewReader("#Sample: zeta\n#Sample: alpha\n#Sample: mid\n")); err != nil {
		t.Fatalf("Consume returned error: %v", err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(p.Samples(), want) {
		t.Errorf("Samples = %v, want %v", p.Samples(), want)
	}
}
