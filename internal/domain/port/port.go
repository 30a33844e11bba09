// Package port defines the capability set the domain use-cases need from a
// remote code-hosting provider, without leaking any transport detail upward.
package port

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies a provider error into the taxonomy the use-cases and
// the reconciler runtime branch on. It is a kind, not a concrete type: two
// errors of the same kind may wrap unrelated causes.
type ErrorKind int

const (
	// KindUnknown is the zero value; never returned by a well-behaved adapter.
	KindUnknown ErrorKind = iota

	// KindNotFound means the resource is absent at the remote. Lookups turn
	// this into a nil result; deletes treat it as success.
	KindNotFound

	// KindAlreadyExists means a create was rejected because a duplicate
	// natural key exists at the remote.
	KindAlreadyExists

	// KindTransport covers network, TLS, and timeout failures. Retryable.
	KindTransport

	// KindIllegalDocument means the cluster object is structurally unusable
	// for reconciliation (e.g. missing namespace). Non-retryable for the
	// current generation, retried on the next user edit.
	KindIllegalDocument

	// KindSerialization means the provider returned a payload the adapter
	// could not decode. Treated as transport for retry purposes.
	KindSerialization

	// KindFinalizer means the finalizer patch itself failed (conflict, stale
	// resourceVersion). Retried.
	KindFinalizer

	// KindPreconditionFailed means the remote rejected the request because a
	// dependent feature was not enabled first.
	KindPreconditionFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindTransport:
		return "Transport"
	case KindIllegalDocument:
		return "IllegalDocument"
	case KindSerialization:
		return "Serialization"
	case KindFinalizer:
		return "Finalizer"
	case KindPreconditionFailed:
		return "PreconditionFailed"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with the kind the use-cases branch on.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a provider Error for op, wrapping err under kind.
func NewError(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf extracts the ErrorKind carried by err, or KindUnknown if err does
// not wrap a *Error.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err represents an absent remote resource.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsAlreadyExists reports whether err represents a duplicate-key rejection.
func IsAlreadyExists(err error) bool {
	return KindOf(err) == KindAlreadyExists
}

// RepositoryResponse is the provider's view of a repository, projected to
// the fields this operator reconciles.
type RepositoryResponse struct {
	FullName            string
	SecurityAndAnalysis map[string]interface{}
	DeleteBranchOnMerge *bool
	AllowAutoMerge      *bool
	AllowSquashMerge    *bool
	AllowMergeCommit    *bool
	AllowRebaseMerge    *bool
	AllowUpdateBranch   *bool
}

// RepositorySpec is the payload sent to create or update a repository. It
// mirrors RepositoryResponse's reconciled fields.
type RepositorySpec struct {
	SecurityAndAnalysis map[string]interface{}
	DeleteBranchOnMerge *bool
	AllowAutoMerge      *bool
	AllowSquashMerge    *bool
	AllowMergeCommit    *bool
	AllowRebaseMerge    *bool
	AllowUpdateBranch   *bool
}

// AutolinkReferenceResponse is the provider's view of an autolink reference.
type AutolinkReferenceResponse struct {
	ID             uint32
	KeyPrefix      string
	URLTemplate    string
	IsAlphanumeric bool
}

// AutolinkReferenceBody is the payload sent to create an autolink reference.
type AutolinkReferenceBody struct {
	KeyPrefix      string
	URLTemplate    string
	IsAlphanumeric bool
}

// RemoteProvider is the single seam between the domain and any transport.
// Implementations must translate transport-specific failures into the
// ErrorKind taxonomy above and never let a transport error type escape.
type RemoteProvider interface {
	// GetRepository returns nil, nil if fullName does not exist at the
	// remote. Any other error is returned as-is.
	GetRepository(ctx context.Context, fullName string) (*RepositoryResponse, error)
	CreateRepository(ctx context.Context, fullName string, spec RepositorySpec) (*RepositoryResponse, error)
	UpdateRepository(ctx context.Context, fullName string, spec RepositorySpec) (*RepositoryResponse, error)

	ListAutolinks(ctx context.Context, fullName string) ([]AutolinkReferenceResponse, error)
	// GetAutolink returns an Error of KindNotFound if id does not exist.
	GetAutolink(ctx context.Context, fullName string, id uint32) (*AutolinkReferenceResponse, error)
	// AddAutolink returns an Error of KindAlreadyExists if the key prefix is
	// already taken on fullName.
	AddAutolink(ctx context.Context, fullName string, body AutolinkReferenceBody) (*AutolinkReferenceResponse, error)
	// DeleteAutolink treats a remote 404 as success.
	DeleteAutolink(ctx context.Context, fullName string, id uint32) error

	// GetTeamPermission returns nil, nil if the team has no role on
	// fullName.
	GetTeamPermission(ctx context.Context, fullName, fullTeamName string) (*string, error)
	UpdateTeamPermission(ctx context.Context, fullName, fullTeamName, role string) error
	// DeleteTeamPermission treats a remote 404 as success.
	DeleteTeamPermission(ctx context.Context, fullName, fullTeamName string) error
}
