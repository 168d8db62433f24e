package golldp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/golldp/internal/testutil"
)

func TestAnalyzeHexGolden(t *testing.T) {
	fixtures := []string{
		"switch_basic",
	}
	for _, name := range fixtures {
		name := name
		t.Run(name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "lldp/"+name+".hex")
			result, err := AnalyzeHex(hexStr)
			require.NoError(t, err)

			var expected []map[string]any
			testutil.LoadJSON(t, "lldp/"+name+".json", &expected)
			require.Len(t, result.TLVs, len(expected))
			for i := range expected {
				require.Equal(t, "", diffMaps(expected[i], result.TLVs[i]),
					"TLV %d (%v)", i, expected[i]["_type"])
			}
		})
	}
}

// diffMaps compares loosely typed maps: JSON numbers arrive as float64
// while decoded fields carry Go integer types, so values are matched by
// their printed form with a numeric tolerance for floats.
func diffMaps(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d", len(expected), len(actual))
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
			return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
		}
	}
	return ""
}
