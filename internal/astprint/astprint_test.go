package astprint

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
	"github.com/wild-lang/wild/internal/parser"
)

// TestMain lets go-snaps detect snapshots that are no longer produced by any
// test in this package (`go test -update` to refresh, per go-snaps' own
// convention).
func TestMain(m *testing.M) {
	snaps.TestMain(m)
}

func TestProgram_FunctionWithControlFlow(t *testing.T) {
	prog, err := parser.Parse(`
		Int add(Int a, Int b) {
			Int total = a + b;
			if (total > 10) {
				return total;
			}
			return 0;
		}
	`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, Program(prog))
}

func TestProgram_ForLoopWithBreakAndContinue(t *testing.T) {
	prog, err := parser.Parse(`
		Int main() {
			for (Int i = 0; i < 10; i++) {
				if (i == 3) { continue; }
				if (i == 7) { break; }
			}
			return 0;
		}
	`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, Program(prog))
}

func TestProgram_MethodCallAndPostfix(t *testing.T) {
	prog, err := parser.Parse(`
		Int main() {
			String s = "hello";
			print(s.substring(1, 3));
			Int x = 0;
			x++;
			return x;
		}
	`)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, Program(prog))
}
