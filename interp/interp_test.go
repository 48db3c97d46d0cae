package interp

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"erio/object"
)

func newTestEnv(t *testing.T) *object.Environment {
	t.Helper()
	env := object.NewEnvironment()
	object.RegisterBuiltins(env, &strings.Builder{})
	return env
}

func mustInt(t *testing.T, v object.Value) int64 {
	t.Helper()
	n, ok := v.(*object.Integer)
	require.True(t, ok)
	return n.Value
}

// TestMain lets go-snaps prune snapshots that no longer have a matching
// test, the same wiring go-dws's fixture suite uses.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func TestScenarios(t *testing.T) {
	scenarios := map[string]string{
		"hello_world": `print("hello world")`,

		"conditional_and_loop": `
test = true
if test then
    total = add(4, 3)
else
    total = 3
end-if
count = 0
a = ["this", "was", "a"]
insert(a, len(a), "triumph")
print(geti(a, 3))
while lt(count, total) do
    print("!")
    count = add(count, 1)
end-while
`,

		"user_defined_multiply": `
def mul(x, y)
    c = 0
    a = 0
    while lt(c, y) do
        a = add(a, x)
        c = add(c, 1)
    end-while
    return a
end-def
print(mul(6, 7))
`,

		"paren_grouping": `print((1 + 2) * 3)`,

		"operator_precedence_chain": `x = 7==1 and 10/5 <= 11 or 8*2-4 > -15 or not 5 != 9 % 6
print(x)`,

		"closures": `
def make_adder(n)
    def adder(x)
        return x + n
    end-def
    return adder
end-def
add5 = make_adder(5)
print(add5(10))
`,

		"sequence_aliasing": `
def double_first(s)
    seti(s, 0, geti(s, 0) * 2)
end-def
a = [1, 2, 3]
double_first(a)
print(geti(a, 0))
`,

		"short_circuit_side_effect": `
def noisy()
    print("called ")
    return true
end-def
x = true or noisy()
y = false and noisy()
print("done")
`,
	}

	for name, src := range scenarios {
		name, src := name, src
		t.Run(name, func(t *testing.T) {
			out, err := RunToString(src)
			require.NoError(t, err)
			snaps.MatchSnapshot(t, out)
		})
	}
}

func TestRuntimeErrorIsReturned(t *testing.T) {
	_, err := RunToString(`print(1 / 0)`)
	require.Error(t, err)
}

func TestSyntaxErrorIsReturned(t *testing.T) {
	_, err := RunToString(`return 1`)
	require.Error(t, err)
}

func TestRunWithEnvPersistsBindingsAcrossCalls(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, RunWithEnv(env, "x = 1"))
	require.NoError(t, RunWithEnv(env, "x = x + 1"))

	v, err := env.Get("x")
	require.NoError(t, err)
	require.Equal(t, int64(2), mustInt(t, v))
}
