// Package githubfake provides an in-memory RemoteProvider used by domain
// tests, substituting for the real GitHub adapter per the design notes'
// "substitute an in-memory fake for tests" guidance.
package githubfake

import (
	"context"
	"sync"

	"github.com/benkeil/github-operator/internal/domain/port"
)

// Provider is a concurrency-safe in-memory RemoteProvider.
type Provider struct {
	mu sync.Mutex

	repositories map[string]port.RepositoryResponse
	autolinks    map[string]map[uint32]port.AutolinkReferenceResponse
	permissions  map[string]map[string]string

	nextAutolinkID uint32

	// Calls records every method invocation in order, for assertions that
	// only N provider-mutating calls were made (idempotence checks).
	Calls []string

	// FailDeleteAutolink, if set, is returned by DeleteAutolink instead of
	// its normal result, for exercising the Cleanup-failure path.
	FailDeleteAutolink error
	// FailDeleteTeamPermission, if set, is returned by DeleteTeamPermission
	// instead of its normal result, for exercising the Cleanup-failure path.
	FailDeleteTeamPermission error
}

// New returns an empty Provider.
func New() *Provider {
	return &Provider{
		repositories:   map[string]port.RepositoryResponse{},
		autolinks:      map[string]map[uint32]port.AutolinkReferenceResponse{},
		permissions:    map[string]map[string]string{},
		nextAutolinkID: 1,
	}
}

// SeedRepository installs a repository as if the remote already had it.
func (p *Provider) SeedRepository(fullName string, resp port.RepositoryResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repositories[fullName] = resp
}

// SeedAutolink installs an autolink reference under the given id.
func (p *Provider) SeedAutolink(fullName string, resp port.AutolinkReferenceResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.autolinks[fullName] == nil {
		p.autolinks[fullName] = map[uint32]port.AutolinkReferenceResponse{}
	}
	p.autolinks[fullName][resp.ID] = resp
	if resp.ID >= p.nextAutolinkID {
		p.nextAutolinkID = resp.ID + 1
	}
}

// SeedTeamPermission installs a team's current role on a repository.
func (p *Provider) SeedTeamPermission(fullName, fullTeamName, role string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.permissions[fullName] == nil {
		p.permissions[fullName] = map[string]string{}
	}
	p.permissions[fullName][fullTeamName] = role
}

func (p *Provider) record(call string) {
	p.Calls = append(p.Calls, call)
}

func (p *Provider) GetRepository(_ context.Context, fullName string) (*port.RepositoryResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("GetRepository")
	resp, ok := p.repositories[fullName]
	if !ok {
		return nil, nil
	}
	return &resp, nil
}

func (p *Provider) CreateRepository(_ context.Context, fullName string, spec port.RepositorySpec) (*port.RepositoryResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("CreateRepository")
	if _, exists := p.repositories[fullName]; exists {
		return nil, port.NewError("CreateRepository", port.KindAlreadyExists, nil)
	}
	resp := port.RepositoryResponse{FullName: fullName}
	applyRepositorySpec(&resp, spec)
	p.repositories[fullName] = resp
	return &resp, nil
}

func (p *Provider) UpdateRepository(_ context.Context, fullName string, spec port.RepositorySpec) (*port.RepositoryResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("UpdateRepository")
	resp, ok := p.repositories[fullName]
	if !ok {
		return nil, port.NewError("UpdateRepository", port.KindNotFound, nil)
	}
	applyRepositorySpec(&resp, spec)
	p.repositories[fullName] = resp
	return &resp, nil
}

func applyRepositorySpec(resp *port.RepositoryResponse, spec port.RepositorySpec) {
	resp.SecurityAndAnalysis = spec.SecurityAndAnalysis
	resp.DeleteBranchOnMerge = spec.DeleteBranchOnMerge
	resp.AllowAutoMerge = spec.AllowAutoMerge
	resp.AllowSquashMerge = spec.AllowSquashMerge
	resp.AllowMergeCommit = spec.AllowMergeCommit
	resp.AllowRebaseMerge = spec.AllowRebaseMerge
	resp.AllowUpdateBranch = spec.AllowUpdateBranch
}

func (p *Provider) ListAutolinks(_ context.Context, fullName string) ([]port.AutolinkReferenceResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ListAutolinks")
	var out []port.AutolinkReferenceResponse
	for _, v := range p.autolinks[fullName] {
		out = append(out, v)
	}
	return out, nil
}

func (p *Provider) GetAutolink(_ context.Context, fullName string, id uint32) (*port.AutolinkReferenceResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("GetAutolink")
	resp, ok := p.autolinks[fullName][id]
	if !ok {
		return nil, port.NewError("GetAutolink", port.KindNotFound, nil)
	}
	return &resp, nil
}

func (p *Provider) AddAutolink(_ context.Context, fullName string, body port.AutolinkReferenceBody) (*port.AutolinkReferenceResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("AddAutolink")
	if p.autolinks[fullName] == nil {
		p.autolinks[fullName] = map[uint32]port.AutolinkReferenceResponse{}
	}
	for _, existing := range p.autolinks[fullName] {
		if existing.KeyPrefix == body.KeyPrefix {
			return nil, port.NewError("AddAutolink", port.KindAlreadyExists, nil)
		}
	}
	id := p.nextAutolinkID
	p.nextAutolinkID++
	resp := port.AutolinkReferenceResponse{
		ID:             id,
		KeyPrefix:      body.KeyPrefix,
		URLTemplate:    body.URLTemplate,
		IsAlphanumeric: body.IsAlphanumeric,
	}
	p.autolinks[fullName][id] = resp
	return &resp, nil
}

func (p *Provider) DeleteAutolink(_ context.Context, fullName string, id uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DeleteAutolink")
	if p.FailDeleteAutolink != nil {
		return p.FailDeleteAutolink
	}
	if _, ok := p.autolinks[fullName][id]; !ok {
		// a missing autolink counts as deleted (see RemoteProvider.DeleteAutolink).
		return nil
	}
	delete(p.autolinks[fullName], id)
	return nil
}

func (p *Provider) GetTeamPermission(_ context.Context, fullName, fullTeamName string) (*string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("GetTeamPermission")
	role, ok := p.permissions[fullName][fullTeamName]
	if !ok {
		return nil, nil
	}
	return &role, nil
}

func (p *Provider) UpdateTeamPermission(_ context.Context, fullName, fullTeamName, role string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("UpdateTeamPermission")
	if p.permissions[fullName] == nil {
		p.permissions[fullName] = map[string]string{}
	}
	p.permissions[fullName][fullTeamName] = role
	return nil
}

func (p *Provider) DeleteTeamPermission(_ context.Context, fullName, fullTeamName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("DeleteTeamPermission")
	if p.FailDeleteTeamPermission != nil {
		return p.FailDeleteTeamPermission
	}
	if _, ok := p.permissions[fullName][fullTeamName]; !ok {
		// a missing assignment counts as deleted (see RemoteProvider.DeleteTeamPermission).
		return nil
	}
	delete(p.permissions[fullName], fullTeamName)
	return nil
}
