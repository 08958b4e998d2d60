package connection

import (
	"encoding/json"
	"testing"
)

func TestSignalDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		isAbsent bool
		expected uint8
	}{
		{name: "create board is the zero code", raw: `{"code":0,"payload":{}}`, expected: CodeCreateBoard},
		{name: "fire", raw: `{"code":1}`, expected: CodeFire},
		{name: "no code field", raw: `{"payload":{}}`, isAbsent: true},
		{name: "null code", raw: `{"code":null}`, isAbsent: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var signal Signal
			if err := json.Unmarshal([]byte(test.raw), &signal); err != nil {
				t.Fatal(err)
			}

			if signal.IsAbsent() != test.isAbsent {
				t.Fatalf("expected absent: %v\tgot: %v", test.isAbsent, signal.IsAbsent())
			}
			if !test.isAbsent && *signal.Code != test.expected {
				t.Fatalf("expected code: %d\tgot: %d", test.expected, *signal.Code)
			}
		})
	}
}

func TestNewSignal(t *testing.T) {
	signal := NewSignal(CodeRender)
	if signal.IsAbsent() || *signal.Code != CodeRender {
		t.Fatalf("expected code: %d\tgot: %+v", CodeRender, signal)
	}

	raw, err := json.Marshal(signal)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"code":2}` {
		t.Fatalf("unexpected encoding: %s", raw)
	}
}
