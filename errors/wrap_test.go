package errors

import (
	stderrors "errors"
	"net/url"
	"testing"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docpile/errkit/remote"
)

func TestConverters_PreserveCause(t *testing.T) {
	cause := stderrors.New("original failure text")
	tests := []struct {
		name string
		wrap func(error) *Error
		kind Kind
	}{
		{"db", FromDB, KindDB},
		{"ssh", FromSSH, KindSSH},
		{"sftp", FromSFTP, KindSFTP},
		{"graph", FromGraph, KindGraph},
		{"json", FromJSON, KindJSON},
		{"zip", FromZip, KindZip},
		{"base64", FromBase64, KindBase64},
		{"image", FromImage, KindImage},
		{"pdf", FromPDF, KindPDF},
		{"url", FromURL, KindURL},
		{"io", FromIO, KindIO},
		{"grpc", FromGRPC, KindGRPC},
		{"task", FromTask, KindTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.wrap(cause)
			if e.Kind() != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind(), tt.kind)
			}
			got := e.Unwrap()
			if got == nil {
				t.Fatal("Unwrap() = nil, cause must be retrievable")
			}
			if got.Error() != cause.Error() {
				t.Errorf("cause display = %q, want %q", got.Error(), cause.Error())
			}
			if !stderrors.Is(e, cause) {
				t.Error("errors.Is must reach the original cause")
			}
		})
	}
}

func TestFromHTTP_PreservesStatusAndCause(t *testing.T) {
	cause := &url.Error{Op: "Get", URL: "https://api.example.com", Err: stderrors.New("EOF")}
	e := FromHTTP(502, cause)
	if e.Status() != 502 {
		t.Errorf("Status = %d, want 502", e.Status())
	}
	if e.Unwrap().Error() != cause.Error() {
		t.Errorf("cause = %q", e.Unwrap().Error())
	}
}

func TestFromSSH_AuthDetection(t *testing.T) {
	if e := FromSSH(&ssh.ServerAuthError{Errors: []error{stderrors.New("no auth passed yet")}}); !e.IsAuth() {
		t.Error("ServerAuthError should map to the auth sentinel")
	}
	handshake := stderrors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password]")
	if e := FromSSH(handshake); !e.IsAuth() {
		t.Error("client handshake auth failure should map to the auth sentinel")
	}
	if e := FromSSH(stderrors.New("ssh: connection lost")); e.IsAuth() {
		t.Error("non-auth ssh failure must stay KindSSH")
	}
}

func TestFromSFTP_PermissionDetection(t *testing.T) {
	denied := &sftp.StatusError{Code: uint32(sftp.ErrSSHFxPermissionDenied)}
	if e := FromSFTP(denied); e.Kind() != KindPermission {
		t.Errorf("permission-denied status mapped to %v", e.Kind())
	}
	noFile := &sftp.StatusError{Code: uint32(sftp.ErrSSHFxNoSuchFile)}
	if e := FromSFTP(noFile); e.Kind() != KindSFTP {
		t.Errorf("no-such-file status mapped to %v", e.Kind())
	}
}

func TestFromGRPC_SentinelMapping(t *testing.T) {
	if e := FromGRPC(status.Error(codes.Unauthenticated, "token expired")); !e.IsAuth() {
		t.Error("Unauthenticated should map to the auth sentinel")
	}
	if e := FromGRPC(status.Error(codes.PermissionDenied, "no access")); e.Kind() != KindPermission {
		t.Error("PermissionDenied should map to the permission sentinel")
	}
	if e := FromGRPC(status.Error(codes.Unavailable, "upstream down")); e.Kind() != KindGRPC {
		t.Errorf("Unavailable mapped to %v, want KindGRPC", e.Kind())
	}
}

func TestGraphResult(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		val := "payload"
		got, err := GraphResult(remote.GraphResponse[string]{Value: &val})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "payload" {
			t.Errorf("value = %q", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		ge := &remote.GraphError{Err: remote.GraphErrorDetail{Code: "itemNotFound", Message: "gone"}}
		_, err := GraphResult(remote.GraphResponse[string]{Err: ge})
		e, ok := AsError(err)
		if !ok || e.Kind() != KindResponse {
			t.Fatalf("expected KindResponse, got %v", err)
		}
		if !stderrors.Is(err, ge) {
			t.Error("graph error body must be the retrievable cause")
		}
	})

	t.Run("neither", func(t *testing.T) {
		_, err := GraphResult(remote.GraphResponse[string]{})
		e, ok := AsError(err)
		if !ok || e.Kind() != KindCustom {
			t.Fatalf("expected KindCustom, got %v", err)
		}
	})
}

func TestFromResponse_ChainsIntoDetail(t *testing.T) {
	re := &remote.Error{Detail: remote.ErrorDetail{
		Code:       "InvalidRequest",
		Message:    "bad",
		InnerError: &remote.InnerError{Code: "NullValue"},
	}}
	e := FromResponse(re)
	var inner *remote.InnerError
	if !stderrors.As(e, &inner) {
		t.Fatal("innererror chain must be reachable through the taxonomy error")
	}
	if inner.Code != "NullValue" {
		t.Errorf("inner code = %q", inner.Code)
	}
}
