package core

import (
	"errors"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	sentinel := errors.New("sentinel")
	data := []struct {
		err  error
		code int
		msg  string
	}{
		{nil, NOERROR, ""},
		{errors.New("plain"), EINTERNAL, "internal error"},
		{Error(EINVALID, "bad %s", "table"), EINVALID, "bad table"},
		{WrapError(sentinel, EMISSING, "no %q", "xyz"), EMISSING, `no "xyz"`},
		{ErrorWithCode(nil, EDUPLICATE), EDUPLICATE, "duplicate"},
	}
	for i, d := range data {
		if c := Code(d.err); c != d.code {
			t.Errorf("%d: expected code %d, have %d", i, d.code, c)
		}
		if m := UserMessage(d.err); m != d.msg {
			t.Errorf("%d: expected message %q, have %q", i, d.msg, m)
		}
	}
}

func TestWrappedErrorsAreFound(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapError(sentinel, EMISSING, "context")
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped error to be found")
	}
	if err.Error() != "[122] sentinel: context" {
		t.Errorf("unexpected error text %q", err.Error())
	}
	if ErrorWithCode(sentinel, EINVALID).Error() != "[123] sentinel" {
		t.Errorf("unexpected error text %q", ErrorWithCode(sentinel, EINVALID).Error())
	}
}

func TestErrorClasses(t *testing.T) {
	data := []struct {
		err             error
		config, feature bool
	}{
		{nil, false, false},
		{Error(ECONFIG, "orphaned alias"), true, false},
		{ErrorWithCode(nil, EDUPLICATE), true, false},
		{Error(EUNKNOWNFEATURE, "fluffy"), false, true},
		{Error(EMISSING, "no table"), false, false},
		{errors.New("plain"), false, false},
	}
	for i, d := range data {
		if IsConfigurationError(d.err) != d.config {
			t.Errorf("%d: expected configuration error = %v for %v", i, d.config, d.err)
		}
		if IsUnknownFeature(d.err) != d.feature {
			t.Errorf("%d: expected unknown feature = %v for %v", i, d.feature, d.err)
		}
	}
}
