package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, v any) Document {
	t.Helper()

	doc, err := FromAny(v)
	require.NoError(t, err)

	return doc
}

func TestFromAny(t *testing.T) {
	type testCase struct {
		name  string
		value any
		kind  Kind
	}

	testCases := []testCase{
		{
			name:  "Nil becomes null",
			value: nil,
			kind:  KindNull,
		},
		{
			name:  "Bool",
			value: true,
			kind:  KindBool,
		},
		{
			name:  "Int becomes number",
			value: 42,
			kind:  KindNumber,
		},
		{
			name:  "Float becomes number",
			value: 4.2,
			kind:  KindNumber,
		},
		{
			name:  "String",
			value: "Mon.",
			kind:  KindString,
		},
		{
			name:  "Slice becomes sequence",
			value: []any{"a", 1, nil},
			kind:  KindSequence,
		},
		{
			name:  "Map becomes mapping",
			value: map[string]any{"a": map[string]any{"b": 1}},
			kind:  KindMapping,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := FromAny(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.kind, doc.Kind())
		})
	}
}

func TestFromAnyUnsupportedType(t *testing.T) {
	_, err := FromAny(struct{}{})
	require.ErrorContains(t, err, "unsupported document value type")
}

func TestDocumentAccessors(t *testing.T) {
	doc := mustDoc(t, map[string]any{
		"day": map[string]any{
			"abbr": []any{"Mon.", "Tue."},
		},
		"count": 7,
	})

	day, ok := doc.Get("day")
	require.True(t, ok)
	require.Equal(t, KindMapping, day.Kind())

	abbr, ok := day.Get("abbr")
	require.True(t, ok)
	require.Equal(t, 2, abbr.Len())

	first, err := abbr.Index(0)
	require.NoError(t, err)
	require.Equal(t, "Mon.", first.StringVal())

	_, err = abbr.Index(2)
	require.ErrorContains(t, err, "out of range")

	count, ok := doc.Get("count")
	require.True(t, ok)
	require.InDelta(t, 7.0, count.NumberVal(), 0)

	require.Equal(t, []string{"count", "day"}, doc.Keys())

	_, ok = doc.Get("missing")
	require.False(t, ok)
}

func TestDocumentEqual(t *testing.T) {
	left := mustDoc(t, map[string]any{"a": []any{1, "x"}, "b": nil})
	right := mustDoc(t, map[string]any{"b": nil, "a": []any{1, "x"}})

	require.True(t, left.Equal(right))

	other := mustDoc(t, map[string]any{"a": []any{1, "y"}, "b": nil})
	require.False(t, left.Equal(other))

	require.False(t, left.Equal(String("a")))
}

func TestDocumentInterfaceRoundTrip(t *testing.T) {
	value := map[string]any{
		"name":  "test",
		"flags": []any{true, false},
		"meta":  map[string]any{"count": 2.0, "none": nil},
	}

	doc := mustDoc(t, value)
	require.Equal(t, value, doc.Interface())
}

func TestMappingCopiesInput(t *testing.T) {
	fields := map[string]Document{"a": Number(1)}
	doc := Mapping(fields)

	fields["b"] = Number(2)

	require.Equal(t, 1, doc.Len())
}

func TestDecodeReader(t *testing.T) {
	type testCase struct {
		name    string
		format  string
		content string
		wantErr error
	}

	testCases := []testCase{
		{
			name:    "Valid json",
			format:  "json",
			content: `{"day": {"abbr": ["Mon."]}}`,
		},
		{
			name:    "Valid yaml",
			format:  "yaml",
			content: "day:\n  abbr:\n    - Mon.\n",
		},
		{
			name:    "Invalid json",
			format:  "json",
			content: `{"day": `,
			wantErr: ErrMalformed,
		},
		{
			name:    "Invalid yaml",
			format:  "yaml",
			content: "day: [unclosed",
			wantErr: ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := DecodeReader(tc.format, strings.NewReader(tc.content))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			expected := mustDoc(t, map[string]any{"day": map[string]any{"abbr": []any{"Mon."}}})
			require.True(t, doc.Equal(expected))
		})
	}
}

func TestDecodeReaderUnknownFormat(t *testing.T) {
	_, err := DecodeReader("toml", strings.NewReader(""))
	require.ErrorContains(t, err, `format "toml"`)
}
