// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestResult_OK(t *testing.T) {
	t.Parallel()

	if !(Result{Code: OK}).OK() {
		t.Error("OK result reported as failure")
	}
	if (Result{Code: FormatError}).OK() {
		t.Error("FormatError result reported as success")
	}
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	if err := (Result{Code: OK}).Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	res := formatError("missing `data` block")
	err := res.Err()
	if err == nil {
		t.Fatal("Err() = nil for failure")
	}
	if !strings.Contains(err.Error(), "data") {
		t.Errorf("Error() = %q, want mention of data", err.Error())
	}

	var got Result
	if !errors.As(err, &got) {
		t.Fatal("error does not unwrap to Result")
	}
	if got.Code != FormatError {
		t.Errorf("Code = %v, want FormatError", got.Code)
	}
}

func TestResult_WarnWritesReason(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	res := ioError("failed to open file: x.wav")
	returned := res.WarnTo(out)

	if returned != res {
		t.Error("WarnTo() changed the result")
	}
	if got := out.String(); !strings.Contains(got, "failed to open file") {
		t.Errorf("warned %q, want the reason", got)
	}
}

func TestResult_WarnSilentOnSuccess(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	(Result{Code: OK}).WarnTo(out)
	if out.Len() != 0 {
		t.Errorf("warned %q for OK result, want nothing", out.String())
	}
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want string
	}{
		{OK, "ok"},
		{IOError, "io error"},
		{FormatError, "format error"},
		{Unsupported, "unsupported"},
		{WeirdConfig, "weird config"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}
