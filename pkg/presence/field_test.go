package presence_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/patchkit/pkg/presence"
)

type patchRequest struct {
	Name  presence.Field[string]         `json:"name,omitzero" yaml:"name"`
	Age   presence.Field[int]            `json:"age,omitzero" yaml:"age"`
	Tags  presence.Field[[]string]       `json:"tags,omitzero" yaml:"tags"`
	Attrs presence.Field[map[string]int] `json:"attrs,omitzero" yaml:"attrs"`
}

func TestField_States(t *testing.T) {
	t.Parallel()

	t.Run("zero value is unset", func(t *testing.T) {
		var f presence.Field[string]
		assert.Equal(t, presence.StateUnset, f.State())
		assert.False(t, f.IsSet())
		assert.False(t, f.IsNull())
		assert.False(t, f.IsPresent())
		assert.True(t, f.IsZero())
	})

	t.Run("null is set but not present", func(t *testing.T) {
		f := presence.Null[string]()
		assert.True(t, f.IsSet())
		assert.True(t, f.IsNull())
		assert.False(t, f.IsPresent())
	})

	t.Run("value is set and present", func(t *testing.T) {
		f := presence.Of("x")
		v, ok := f.Get()
		assert.True(t, ok)
		assert.Equal(t, "x", v)
		assert.True(t, f.IsPresent())
	})

	t.Run("nil pointer collapses to null", func(t *testing.T) {
		var p *int
		f := presence.Of(p)
		assert.True(t, f.IsNull())

		assert.True(t, presence.FromPtr[int](nil).IsNull())
		n := 3
		assert.Equal(t, 3, presence.FromPtr(&n).Value())
	})

	t.Run("nil slice collapses to null but empty slice does not", func(t *testing.T) {
		assert.True(t, presence.Of([]string(nil)).IsNull())
		assert.True(t, presence.Of([]string{}).IsPresent())
	})
}

func TestField_Accessors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "def", presence.Null[string]().Or("def"))
	assert.Equal(t, "v", presence.Of("v").Or("def"))
	assert.Nil(t, presence.Null[string]().Ptr())
	require.NotNil(t, presence.Of(5).Ptr())
	assert.Equal(t, 5, *presence.Of(5).Ptr())

	assert.Equal(t, "<unset>", presence.Field[int]{}.String())
	assert.Equal(t, "null", presence.Null[int]().String())
	assert.Equal(t, "42", presence.Of(42).String())
	assert.Equal(t, "value", presence.StateValue.String())
}

func TestField_ApplyTo(t *testing.T) {
	t.Parallel()

	t.Run("unset keeps current value", func(t *testing.T) {
		dst := "current"
		presence.Field[string]{}.ApplyTo(&dst)
		assert.Equal(t, "current", dst)
	})

	t.Run("null resets to zero value", func(t *testing.T) {
		dst := "current"
		presence.Null[string]().ApplyTo(&dst)
		assert.Empty(t, dst)
	})

	t.Run("value overwrites", func(t *testing.T) {
		dst := "current"
		presence.Of("next").ApplyTo(&dst)
		assert.Equal(t, "next", dst)
	})

	t.Run("nil destination is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { presence.Of("x").ApplyTo(nil) })
	})
}

func TestField_JSON(t *testing.T) {
	t.Parallel()

	t.Run("distinguishes absent, null and value", func(t *testing.T) {
		var req patchRequest
		err := json.Unmarshal([]byte(`{"name": null, "age": 30}`), &req)
		require.NoError(t, err)

		assert.True(t, req.Name.IsNull())
		assert.Equal(t, 30, req.Age.Value())
		assert.True(t, req.Age.IsPresent())
		assert.False(t, req.Tags.IsSet())
		assert.False(t, req.Attrs.IsSet())
	})

	t.Run("decodes collections", func(t *testing.T) {
		var req patchRequest
		err := json.Unmarshal([]byte(`{"tags": ["a", "b"], "attrs": {"x": 1}}`), &req)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, req.Tags.Value())
		assert.Equal(t, map[string]int{"x": 1}, req.Attrs.Value())
	})

	t.Run("type mismatch is an error", func(t *testing.T) {
		var req patchRequest
		err := json.Unmarshal([]byte(`{"age": "thirty"}`), &req)
		assert.Error(t, err)
	})

	t.Run("omitzero drops unset fields on encode", func(t *testing.T) {
		req := patchRequest{Name: presence.Of("bob"), Age: presence.Null[int]()}
		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "bob", "age": null}`, string(data))
	})
}

func TestField_YAML(t *testing.T) {
	t.Parallel()

	var req patchRequest
	err := yaml.Unmarshal([]byte("name: bob\nage: 7\ntags: [a]\n"), &req)
	require.NoError(t, err)

	assert.Equal(t, "bob", req.Name.Value())
	assert.Equal(t, 7, req.Age.Value())
	assert.Equal(t, []string{"a"}, req.Tags.Value())
	assert.False(t, req.Attrs.IsSet())
}

func TestField_Assignable(t *testing.T) {
	t.Parallel()

	var f presence.Field[int]
	var a presence.Assignable = &f

	target := a.NewTarget()
	p, ok := target.(*int)
	require.True(t, ok)
	*p = 9
	a.AssignFrom(target)
	assert.Equal(t, 9, f.Value())

	a.SetNull()
	assert.True(t, f.IsNull())

	f.Clear()
	assert.False(t, f.IsSet())

	assert.Panics(t, func() { a.AssignFrom(new(string)) })
}
