package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patchkit/pkg/presence"
	"github.com/dmitrymomot/patchkit/pkg/validator"
)

type person struct {
	Name  presence.Field[string]
	Integ presence.Field[int]
}

func personName(p person) presence.Field[string] { return p.Name }
func personInteg(p person) presence.Field[int]   { return p.Integ }

func personValidator() validator.Validator[person] {
	return validator.New(
		validator.On("name", personName, validator.Required[string](), validator.MinLength(4)),
		validator.On("integ", personInteg, validator.Required[int](), validator.Minimum(18)),
	)
}

type pojo struct {
	NotNull presence.Field[string]
	Same    presence.Field[*pojo]
}

func pojoValidator() validator.Validator[*pojo] {
	return validator.New(
		validator.On("notNull", func(p *pojo) presence.Field[string] { return p.NotNull },
			validator.NotNull[string]()),
		validator.On("samePojo", func(p *pojo) presence.Field[*pojo] { return p.Same },
			validator.Nested(validator.Lazy(pojoValidator))),
	)
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("reports every field violation in declaration order", func(t *testing.T) {
		model := person{Name: presence.Of("x"), Integ: presence.Of(12)}

		res := personValidator().Validate(model)

		require.False(t, res.IsValid())
		assert.Equal(t, validator.IssueList{
			{Path: "name", Code: "validation.min_length", Message: "Must be longer than 4 characters", Params: map[string]any{"min": 4}},
			{Path: "integ", Code: "validation.minimum", Message: "Must be 18 or greater", Params: map[string]any{"min": 18}},
		}, res.Issues())
		assert.Equal(t, "name -> Must be longer than 4 characters; integ -> Must be 18 or greater", res.Issues().String())
	})

	t.Run("valid model carries the model", func(t *testing.T) {
		model := person{Name: presence.Of("abcd"), Integ: presence.Of(18)}

		res := personValidator().Validate(model)

		assert.True(t, res.IsValid())
		assert.Empty(t, res.Issues())
		assert.Equal(t, model, res.Value())
	})

	t.Run("absent fields fail required but skip format rules", func(t *testing.T) {
		res := personValidator().Validate(person{})

		assert.Equal(t, []string{"name", "integ"}, res.Issues().Paths())
		assert.Equal(t, []string{"Is required"}, res.Issues().Messages("name"))
		assert.Equal(t, []string{"Is required"}, res.Issues().Messages("integ"))
	})

	t.Run("null fields pass required but fail format rules", func(t *testing.T) {
		model := person{Name: presence.Null[string](), Integ: presence.Null[int]()}

		res := personValidator().Validate(model)

		assert.Equal(t, []string{"Must be longer than 4 characters"}, res.Issues().Messages("name"))
		assert.Equal(t, []string{"Must be 18 or greater"}, res.Issues().Messages("integ"))
	})

	t.Run("zero validator accepts everything", func(t *testing.T) {
		var v validator.Validator[person]
		assert.True(t, v.Validate(person{}).IsValid())
	})

	t.Run("panics without constraints", func(t *testing.T) {
		assert.Panics(t, func() { validator.New[person]() })
		assert.Panics(t, func() { validator.On[person, string]("name", personName) })
	})
}

func TestValidator_OnValue(t *testing.T) {
	t.Parallel()

	type plain struct {
		Title string
		Note  *string
	}
	v := validator.New(
		validator.OnValue("title", func(p plain) string { return p.Title }, validator.Required[string](), validator.MinLength(3)),
		validator.OnValue("note", func(p plain) *string { return p.Note }, validator.NotNull[*string]()),
	)

	res := v.Validate(plain{Title: "ab"})

	assert.Equal(t, validator.IssueList{
		{Path: "title", Code: "validation.min_length", Message: "Must be longer than 3 characters", Params: map[string]any{"min": 3}},
		{Path: "note", Code: "validation.not_null", Message: "Must not be null"},
	}, res.Issues())
}

func TestValidator_FromIssues(t *testing.T) {
	t.Parallel()

	external := validator.IssueList{{Path: "integ", Message: "not a valid Integer value"}}

	t.Run("always reports the given issues", func(t *testing.T) {
		res := validator.FromIssues[person](external).Validate(person{})
		assert.Equal(t, external, res.Issues())
	})

	t.Run("empty list is valid", func(t *testing.T) {
		model := person{Name: presence.Of("abcd")}
		res := validator.FromIssues[person](nil).Validate(model)
		assert.True(t, res.IsValid())
		assert.Equal(t, model, res.Value())
	})

	t.Run("external issues come before domain issues", func(t *testing.T) {
		model := person{Name: presence.Of("abcd")}

		res := validator.FromIssues[person](external).And(personValidator()).Validate(model)

		assert.Equal(t, validator.IssueList{
			{Path: "integ", Message: "not a valid Integer value"},
			{Path: "integ", Code: "validation.required", Message: "Is required"},
		}, res.Issues())
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		list := validator.IssueList{{Path: "a", Message: "x"}}
		v := validator.FromIssues[person](list)
		list[0].Message = "changed"
		assert.Equal(t, "x", v.Validate(person{}).Issues()[0].Message)
	})
}

func TestValidator_And(t *testing.T) {
	t.Parallel()

	extra := validator.FromFunc(func(p person) validator.IssueList {
		if p.Name.Value() == "root" {
			return validator.IssueList{{Path: "name", Code: "reserved", Message: "Is reserved"}}
		}
		return nil
	})

	res := personValidator().And(extra).Validate(person{Name: presence.Of("root"), Integ: presence.Of(1)})

	assert.Equal(t, []string{"integ", "name"}, res.Issues().Paths())
	assert.Equal(t, []string{"Is reserved"}, res.Issues().Messages("name"))
}

func TestValidator_Lazy(t *testing.T) {
	t.Parallel()

	t.Run("validates a self-referential model at every depth", func(t *testing.T) {
		root := &pojo{
			NotNull: presence.Of("root"),
			Same: presence.Of(&pojo{
				NotNull: presence.Null[string](),
				Same: presence.Of(&pojo{
					NotNull: presence.Null[string](),
				}),
			}),
		}

		res := pojoValidator().Validate(root)

		assert.Equal(t, []string{"samePojo.notNull", "samePojo.samePojo.notNull"}, res.Issues().Paths())
	})

	t.Run("resolves the supplier on every call", func(t *testing.T) {
		calls := 0
		v := validator.Lazy(func() validator.Validator[person] {
			calls++
			return personValidator()
		})

		v.Validate(person{})
		v.Validate(person{})

		assert.Equal(t, 2, calls)
	})

	t.Run("panics on nil supplier", func(t *testing.T) {
		assert.Panics(t, func() { validator.Lazy[person](nil) })
	})
}

func TestValidator_ProceedIfValid(t *testing.T) {
	t.Parallel()

	t.Run("returns the model when valid", func(t *testing.T) {
		model := person{Name: presence.Of("abcd"), Integ: presence.Of(20)}

		got, err := personValidator().ProceedIfValid(model)

		require.NoError(t, err)
		assert.Equal(t, model, got)
	})

	t.Run("returns an error listing every issue", func(t *testing.T) {
		_, err := personValidator().ProceedIfValid(person{Name: presence.Of("x"), Integ: presence.Of(12)})

		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, "validation failed: name -> Must be longer than 4 characters, integ -> Must be 18 or greater", err.Error())
		assert.Len(t, validator.ExtractIssues(err), 2)
	})

	t.Run("issues survive wrapping", func(t *testing.T) {
		_, err := personValidator().ProceedIfValid(person{})
		wrapped := fmt.Errorf("create person: %w", err)

		assert.Equal(t, []string{"name", "integ"}, validator.ExtractIssues(wrapped).Paths())
		assert.Nil(t, validator.ExtractIssues(errors.New("other")))
		assert.Nil(t, validator.ExtractIssues(nil))
	})

	t.Run("uses the custom error factory", func(t *testing.T) {
		errBadRequest := errors.New("bad request")

		_, err := personValidator().ProceedIfValidWith(person{}, func(res validator.Result[person]) error {
			return fmt.Errorf("%w: %d issues", errBadRequest, len(res.Issues()))
		})

		assert.ErrorIs(t, err, errBadRequest)
		assert.EqualError(t, err, "bad request: 2 issues")
	})

	t.Run("falls back to the default error when the factory returns nil", func(t *testing.T) {
		_, err := personValidator().ProceedIfValidWith(person{}, func(validator.Result[person]) error { return nil })
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	acc := validator.NewAccessors[person]()
	validator.Register(acc, "name", personName)
	validator.Register(acc, "integ", personInteg)
	model := person{Name: presence.Of("bob")}

	t.Run("lists registered names", func(t *testing.T) {
		assert.Equal(t, []string{"name", "integ"}, acc.Names())
	})

	t.Run("looks up a property", func(t *testing.T) {
		p, err := validator.Lookup[string](acc, model, "name")
		require.NoError(t, err)
		assert.Equal(t, "name", p.Name())
		assert.Equal(t, "bob", p.MustValue())
	})

	t.Run("label renames the property", func(t *testing.T) {
		p, err := validator.Lookup[string](acc, model, "name", "displayName")
		require.NoError(t, err)
		assert.Equal(t, "displayName", p.Name())
	})

	t.Run("unset property is absent", func(t *testing.T) {
		p, err := validator.Lookup[int](acc, model, "integ")
		require.NoError(t, err)
		assert.True(t, p.IsAbsent())
	})

	t.Run("unknown name names the model and the property", func(t *testing.T) {
		_, err := validator.Lookup[string](acc, model, "email")
		require.ErrorIs(t, err, validator.ErrUnknownProperty)
		assert.Contains(t, err.Error(), "validator_test.person")
		assert.Contains(t, err.Error(), `"email"`)
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		_, err := validator.Lookup[int](acc, model, "name")
		assert.ErrorIs(t, err, validator.ErrPropertyType)
	})

	t.Run("OnField validates through the table", func(t *testing.T) {
		v := validator.New(
			validator.OnField(acc, "name", validator.MinLength(4)),
			validator.OnField(acc, "integ", validator.Required[int]()),
		)
		assert.Equal(t, []string{"name", "integ"}, v.Validate(model).Issues().Paths())
	})

	t.Run("OnFieldAs reports under the label", func(t *testing.T) {
		v := validator.New(
			validator.OnFieldAs(acc, "name", "fullName", validator.MinLength(4)),
			validator.OnFieldAs(acc, "integ", "", validator.Required[int]()),
		)
		assert.Equal(t, []string{"fullName", "integ"}, v.Validate(model).Issues().Paths())
		assert.Panics(t, func() { validator.OnFieldAs(acc, "email", "mail", validator.Required[string]()) })
	})

	t.Run("OnField panics at construction on misuse", func(t *testing.T) {
		assert.Panics(t, func() { validator.OnField(acc, "email", validator.Required[string]()) })
		assert.Panics(t, func() { validator.OnField(acc, "name", validator.Required[int]()) })
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.Register(acc, "name", personName) })
	})
}
