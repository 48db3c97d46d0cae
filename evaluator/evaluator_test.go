package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erio/lexer"
	"erio/object"
	"erio/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var sink strings.Builder
	env := object.NewEnvironment()
	object.RegisterBuiltins(env, &sink)

	prog, err := parser.ParseProgram(lexer.New(src))
	require.NoError(t, err)

	_, err = Execute(env, prog.Statements)
	return sink.String(), err
}

func TestPrintHelloWorld(t *testing.T) {
	out, err := run(t, `print("hello world")`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestIfElseBranches(t *testing.T) {
	out, err := run(t, `
x = 10
if x > 5 then
    print("big")
else
    print("small")
end-if
`)
	require.NoError(t, err)
	assert.Equal(t, "big", out)
}

func TestWhileLoopAccumulates(t *testing.T) {
	out, err := run(t, `
i = 0
total = 0
while i < 5 do
    total = total + i
    i = i + 1
end-while
print(total)
`)
	require.NoError(t, err)
	assert.Equal(t, "10", out)
}

func TestFunctionDefAndRecursion(t *testing.T) {
	out, err := run(t, `
def fact(n)
    if n == 0 then
        return 1
    end-if
    return n * fact(n - 1)
end-def
print(fact(5))
`)
	require.NoError(t, err)
	assert.Equal(t, "120", out)
}

func TestReturnPropagatesThroughNestedBlocks(t *testing.T) {
	out, err := run(t, `
def f(n)
    while true do
        if n > 0 then
            return n
        end-if
    end-while
end-def
print(f(42))
`)
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	out, err := run(t, `
def make_adder(n)
    def adder(x)
        return x + n
    end-def
    return adder
end-def
add5 = make_adder(5)
print(add5(10))
`)
	require.NoError(t, err)
	assert.Equal(t, "15", out)
}

func TestSequenceMutationIsSharedByReference(t *testing.T) {
	out, err := run(t, `
def mutate(s)
    seti(s, 0, 99)
end-def
a = [1, 2, 3]
mutate(a)
print(geti(a, 0))
`)
	require.NoError(t, err)
	assert.Equal(t, "99", out)
}

func TestStrictTruthinessRejectsNonBooleans(t *testing.T) {
	out, err := run(t, `
if 5 then
    print("yes")
else
    print("no")
end-if
`)
	require.NoError(t, err)
	assert.Equal(t, "no", out, "only Boolean(true) is truthy; Integer(5) must not be")
}

func TestShortCircuitOrSkipsRightOperand(t *testing.T) {
	out, err := run(t, `
def noisy()
    print("called")
    return true
end-def
x = true or noisy()
`)
	require.NoError(t, err)
	assert.Equal(t, "", out, "or must short-circuit before evaluating the right operand")
}

func TestShortCircuitAndSkipsRightOperand(t *testing.T) {
	out, err := run(t, `
def noisy()
    print("called")
    return true
end-def
x = false and noisy()
`)
	require.NoError(t, err)
	assert.Equal(t, "", out, "and must short-circuit before evaluating the right operand")
}

func TestFloorDivisionAndModulo(t *testing.T) {
	out, err := run(t, `
print(-7 / 2)
print(-7 % 2)
`)
	require.NoError(t, err)
	assert.Equal(t, "-41", out, "floor division rounds toward -inf, modulo's sign follows the divisor")
}

func TestDivisionByZeroErrors(t *testing.T) {
	_, err := run(t, `print(1 / 0)`)
	assert.Error(t, err)
}

func TestUndefinedNameErrors(t *testing.T) {
	_, err := run(t, `print(undefined_name)`)
	assert.Error(t, err)
}

func TestAssignmentShadowsInCurrentFrame(t *testing.T) {
	out, err := run(t, `
x = 1
def f()
    x = 2
    print(x)
end-def
f()
print(x)
`)
	require.NoError(t, err)
	assert.Equal(t, "21", out, "assignment inside a function writes a new local binding, not the outer one")
}

func TestArgumentCountMismatchIsNotDiagnosed(t *testing.T) {
	out, err := run(t, `
def f(x, y)
    return x
end-def
print(f(5))
`)
	require.NoError(t, err)
	assert.Equal(t, "5", out, "excess or missing arguments bind positionally, zip-style, and are never diagnosed")
}

func TestUnboundParameterErrorsOnlyIfReferenced(t *testing.T) {
	_, err := run(t, `
def f(x, y)
    return y
end-def
print(f(5))
`)
	assert.Error(t, err, "an unbound parameter surfaces as a name-not-found error only when actually read")
}

func TestStringComparisonAndConcatenation(t *testing.T) {
	out, err := run(t, `
print(add("foo", "bar"))
if "abc" < "abd" then
    print("yes")
end-if
`)
	require.NoError(t, err)
	assert.Equal(t, "foobaryes", out)
}
