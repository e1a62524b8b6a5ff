package cssns

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchFalsyReturnsNil(t *testing.T) {
	for _, x := range []any{nil, false, 0, "", 0.0, (*Widget)(nil), []string(nil)} {
		out, err := Dispatch("NS", x)
		require.NoError(t, err)
		assert.Nil(t, out, "input %#v", x)
	}
}

func TestDispatchRoutesByInput(t *testing.T) {
	out, err := Dispatch("NS", "this row")
	require.NoError(t, err)
	assert.Equal(t, "NS NS-row", out)

	out, err = Dispatch("NS", map[string]bool{"a": true, "b": false, "c": true})
	require.NoError(t, err)
	assert.Equal(t, "NS-a NS-c", out)

	out, err = Dispatch("NS", Button("Go", "this primary"))
	require.NoError(t, err)
	assert.Equal(t, Button("Go", "NS NS-primary"), out)

	w := Button("Go", "primary")
	out, err = Dispatch("NS", &w)
	require.NoError(t, err)
	assert.Equal(t, Button("Go", "NS-primary"), out)
}

func TestDispatchNonElementStructIsEmptyClassList(t *testing.T) {
	out, err := Dispatch("NS", Widget{Classes: "row"})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestDispatchInvalidOptions(t *testing.T) {
	_, err := Dispatch(42, "row")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMakeFactory(t *testing.T) {
	ns, err := MakeFactory("components/MyComponent")
	require.NoError(t, err)

	out, err := ns("this row")
	require.NoError(t, err)
	assert.Equal(t, "MyComponent MyComponent-row", out)

	out, err = ns(Container("row", Container("column")))
	require.NoError(t, err)
	assert.Equal(t, Container("MyComponent-row", Container("MyComponent-column")), out)

	out, err = ns(false)
	require.NoError(t, err)
	assert.Nil(t, out)

	_, err = MakeFactory(map[string]any{"namespace": "x", "include": "not-a-pattern"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "include", verr.Option)
}

func TestNamespacerMethods(t *testing.T) {
	ns, err := New("Card")
	require.NoError(t, err)

	assert.Equal(t, "Card", ns.Options().Namespace())
	assert.Equal(t, "Card Card-title", ns.Classes([]any{"this", If("title", true), If("hidden", false)}))

	tree, err := ns.Tree(Text("Hi", "body"))
	require.NoError(t, err)
	assert.Equal(t, Text("Hi", "Card-body"), tree)

	w, err := ns.Widget(VStack("this", Label("x", "label")))
	require.NoError(t, err)
	assert.Equal(t, "Card", w.Classes)
	assert.Equal(t, "Card-label", w.Children[0].Classes)

	_, err = ns.Widget(Widget{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNamespacerCache(t *testing.T) {
	ns, err := New("NS", WithCache(2))
	require.NoError(t, err)

	assert.Equal(t, "NS-a", ns.Classes("a"))
	assert.Equal(t, "NS-a", ns.Classes("a"))
	assert.Equal(t, 1, ns.CacheLen())

	ns.Classes("b")
	ns.Classes("c")
	assert.Equal(t, 2, ns.CacheLen())

	uncached, err := New("NS", WithCache(0))
	require.NoError(t, err)
	uncached.Classes("a")
	assert.Equal(t, 0, uncached.CacheLen())
}

func TestNamespacerConcurrentUse(t *testing.T) {
	ns, err := New("NS", WithCache(16))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "NS NS-row", ns.Classes("this row"))
			}
		}()
	}
	wg.Wait()
}

func TestNamespacerLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ns, err := New("NS", WithLogger(log))
	require.NoError(t, err)
	ns.Classes("row")

	assert.Contains(t, buf.String(), `"namespace":"NS"`)
	assert.Contains(t, buf.String(), `"out":"NS-row"`)
	assert.Contains(t, buf.String(), "rewrote class list")
}
