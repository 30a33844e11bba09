// Package github is the concrete Remote Provider Port adapter. It is the
// only package in this module allowed to import go-github or know about
// HTTP status codes; every other package talks to internal/domain/port.
package github

import (
	"context"
	"errors"
	"net/http"

	gogithub "github.com/google/go-github/v64/github"
	"golang.org/x/oauth2"

	"github.com/benkeil/github-operator/internal/domain/port"
)

// Client adapts go-github's REST client to the RemoteProvider port.
type Client struct {
	repositories repositoriesService
	teams        teamsService
}

// repositoriesService is the subset of go-github's RepositoriesService this
// adapter calls, named so a fake can substitute for it in adapter-level
// tests without standing up an HTTP server.
type repositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*gogithub.Repository, *gogithub.Response, error)
	Edit(ctx context.Context, owner, repo string, repository *gogithub.Repository) (*gogithub.Repository, *gogithub.Response, error)
	ListAutolinks(ctx context.Context, owner, repo string, opts *gogithub.ListOptions) ([]*gogithub.AutolinkReference, *gogithub.Response, error)
	GetAutolink(ctx context.Context, owner, repo string, id int64) (*gogithub.AutolinkReference, *gogithub.Response, error)
	AddAutolink(ctx context.Context, owner, repo string, opts *gogithub.AutolinkReference) (*gogithub.AutolinkReference, *gogithub.Response, error)
	DeleteAutolink(ctx context.Context, owner, repo string, id int64) (*gogithub.Response, error)
}

type teamsService interface {
	GetTeamRepoBySlug(ctx context.Context, org, slug, owner, repo string) (*gogithub.Repository, *gogithub.Response, error)
	AddTeamRepoBySlug(ctx context.Context, org, slug, owner, repo string, opts *gogithub.TeamAddTeamRepoOptions) (*gogithub.Response, error)
	RemoveTeamRepoBySlug(ctx context.Context, org, slug, owner, repo string) (*gogithub.Response, error)
}

// NewClient builds a Client authenticated with a bearer token sourced from
// GITHUB_TOKEN, the way spec §6 requires.
func NewClient(token string) *Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), tokenSource)
	gh := gogithub.NewClient(httpClient)
	return &Client{repositories: gh.Repositories, teams: gh.Teams}
}

func splitFullName(fullName string) (owner, repo string) {
	for i := 0; i < len(fullName); i++ {
		if fullName[i] == '/' {
			return fullName[:i], fullName[i+1:]
		}
	}
	return fullName, ""
}

func mapError(op string, resp *gogithub.Response, err error) error {
	if err == nil {
		return nil
	}
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return port.NewError(op, port.KindNotFound, err)
	}
	var acceptedErr *gogithub.AcceptedError
	if errors.As(err, &acceptedErr) {
		return port.NewError(op, port.KindTransport, err)
	}
	var errResp *gogithub.ErrorResponse
	if errors.As(err, &errResp) {
		for _, e := range errResp.Errors {
			if e.Code == "already_exists" {
				return port.NewError(op, port.KindAlreadyExists, err)
			}
		}
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return port.NewError(op, port.KindPreconditionFailed, err)
		}
	}
	return port.NewError(op, port.KindTransport, err)
}

func (c *Client) GetRepository(ctx context.Context, fullName string) (*port.RepositoryResponse, error) {
	owner, repo := splitFullName(fullName)
	ghRepo, resp, err := c.repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, mapError("GetRepository", resp, err)
	}
	return toRepositoryResponse(ghRepo), nil
}

func (c *Client) CreateRepository(ctx context.Context, fullName string, spec port.RepositorySpec) (*port.RepositoryResponse, error) {
	// Creation from scratch requires organization context this spec does
	// not model (spec §1 Non-goals, §9 open question 1); callers must not
	// reach this path for a repository the operator is meant to create.
	return nil, port.NewError("CreateRepository", port.KindPreconditionFailed, errors.New("repository creation is out of scope"))
}

func (c *Client) UpdateRepository(ctx context.Context, fullName string, spec port.RepositorySpec) (*port.RepositoryResponse, error) {
	owner, repo := splitFullName(fullName)
	patch := fromRepositorySpec(spec)
	ghRepo, resp, err := c.repositories.Edit(ctx, owner, repo, patch)
	if err != nil {
		return nil, mapError("UpdateRepository", resp, err)
	}
	return toRepositoryResponse(ghRepo), nil
}

func (c *Client) ListAutolinks(ctx context.Context, fullName string) ([]port.AutolinkReferenceResponse, error) {
	owner, repo := splitFullName(fullName)
	links, resp, err := c.repositories.ListAutolinks(ctx, owner, repo, &gogithub.ListOptions{PerPage: 100})
	if err != nil {
		return nil, mapError("ListAutolinks", resp, err)
	}
	out := make([]port.AutolinkReferenceResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toAutolinkResponse(l))
	}
	return out, nil
}

func (c *Client) GetAutolink(ctx context.Context, fullName string, id uint32) (*port.AutolinkReferenceResponse, error) {
	owner, repo := splitFullName(fullName)
	link, resp, err := c.repositories.GetAutolink(ctx, owner, repo, int64(id))
	if err != nil {
		return nil, mapError("GetAutolink", resp, err)
	}
	result := toAutolinkResponse(link)
	return &result, nil
}

func (c *Client) AddAutolink(ctx context.Context, fullName string, body port.AutolinkReferenceBody) (*port.AutolinkReferenceResponse, error) {
	owner, repo := splitFullName(fullName)
	link, resp, err := c.repositories.AddAutolink(ctx, owner, repo, &gogithub.AutolinkReference{
		KeyPrefix:      &body.KeyPrefix,
		URLTemplate:    &body.URLTemplate,
		IsAlphanumeric: &body.IsAlphanumeric,
	})
	if err != nil {
		return nil, mapError("AddAutolink", resp, err)
	}
	result := toAutolinkResponse(link)
	return &result, nil
}

func (c *Client) DeleteAutolink(ctx context.Context, fullName string, id uint32) error {
	owner, repo := splitFullName(fullName)
	resp, err := c.repositories.DeleteAutolink(ctx, owner, repo, int64(id))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return mapError("DeleteAutolink", resp, err)
	}
	return nil
}

func (c *Client) GetTeamPermission(ctx context.Context, fullName, fullTeamName string) (*string, error) {
	owner, repo := splitFullName(fullName)
	org, slug := splitFullName(fullTeamName)
	teamRepo, resp, err := c.teams.GetTeamRepoBySlug(ctx, org, slug, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, mapError("GetTeamPermission", resp, err)
	}
	role := permissionFromRepo(teamRepo)
	if role == "" {
		return nil, nil
	}
	return &role, nil
}

func (c *Client) UpdateTeamPermission(ctx context.Context, fullName, fullTeamName, role string) error {
	owner, repo := splitFullName(fullName)
	org, slug := splitFullName(fullTeamName)
	resp, err := c.teams.AddTeamRepoBySlug(ctx, org, slug, owner, repo, &gogithub.TeamAddTeamRepoOptions{Permission: role})
	if err != nil {
		return mapError("UpdateTeamPermission", resp, err)
	}
	return nil
}

func (c *Client) DeleteTeamPermission(ctx context.Context, fullName, fullTeamName string) error {
	owner, repo := splitFullName(fullName)
	org, slug := splitFullName(fullTeamName)
	resp, err := c.teams.RemoveTeamRepoBySlug(ctx, org, slug, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return mapError("DeleteTeamPermission", resp, err)
	}
	return nil
}

func toRepositoryResponse(r *gogithub.Repository) *port.RepositoryResponse {
	out := &port.RepositoryResponse{
		FullName:            r.GetFullName(),
		DeleteBranchOnMerge: r.DeleteBranchOnMerge,
		AllowAutoMerge:      r.AllowAutoMerge,
		AllowSquashMerge:    r.AllowSquashMerge,
		AllowMergeCommit:    r.AllowMergeCommit,
		AllowRebaseMerge:    r.AllowRebaseMerge,
		AllowUpdateBranch:   r.AllowUpdateBranch,
	}
	if r.SecurityAndAnalysis != nil {
		out.SecurityAndAnalysis = securityAndAnalysisToMap(r.SecurityAndAnalysis)
	}
	return out
}

func fromRepositorySpec(spec port.RepositorySpec) *gogithub.Repository {
	r := &gogithub.Repository{
		DeleteBranchOnMerge: spec.DeleteBranchOnMerge,
		AllowAutoMerge:      spec.AllowAutoMerge,
		AllowSquashMerge:    spec.AllowSquashMerge,
		AllowMergeCommit:    spec.AllowMergeCommit,
		AllowRebaseMerge:    spec.AllowRebaseMerge,
		AllowUpdateBranch:   spec.AllowUpdateBranch,
	}
	if spec.SecurityAndAnalysis != nil {
		r.SecurityAndAnalysis = securityAndAnalysisFromMap(spec.SecurityAndAnalysis)
	}
	return r
}

func toAutolinkResponse(l *gogithub.AutolinkReference) port.AutolinkReferenceResponse {
	return port.AutolinkReferenceResponse{
		ID:             uint32(l.GetID()),
		KeyPrefix:      l.GetKeyPrefix(),
		URLTemplate:    l.GetURLTemplate(),
		IsAlphanumeric: l.GetIsAlphanumeric(),
	}
}

func permissionFromRepo(r *gogithub.Repository) string {
	if r == nil || r.Permissions == nil {
		return ""
	}
	switch {
	case r.Permissions["admin"]:
		return "admin"
	case r.Permissions["maintain"]:
		return "maintain"
	case r.Permissions["push"]:
		return "push"
	case r.Permissions["triage"]:
		return "triage"
	case r.Permissions["pull"]:
		return "pull"
	default:
		return ""
	}
}

func securityAndAnalysisToMap(sa *gogithub.SecurityAndAnalysis) map[string]interface{} {
	out := map[string]interface{}{}
	addFeature := func(key string, feature *gogithub.SecurityAndAnalysisStatus) {
		if feature == nil || feature.Status == nil {
			return
		}
		out[key] = map[string]interface{}{"status": *feature.Status}
	}
	addFeature("advancedSecurity", sa.AdvancedSecurity)
	addFeature("secretScanning", sa.SecretScanning)
	addFeature("secretScanningPushProtection", sa.SecretScanningPushProtection)
	addFeature("dependabotSecurityUpdates", sa.DependabotSecurityUpdates)
	addFeature("secretScanningValidityChecks", sa.SecretScanningValidityChecks)
	return out
}

func securityAndAnalysisFromMap(value map[string]interface{}) *gogithub.SecurityAndAnalysis {
	out := &gogithub.SecurityAndAnalysis{}
	get := func(key string) *gogithub.SecurityAndAnalysisStatus {
		raw, ok := value[key].(map[string]interface{})
		if !ok {
			return nil
		}
		status, ok := raw["status"].(string)
		if !ok {
			return nil
		}
		return &gogithub.SecurityAndAnalysisStatus{Status: &status}
	}
	out.AdvancedSecurity = get("advancedSecurity")
	out.SecretScanning = get("secretScanning")
	out.SecretScanningPushProtection = get("secretScanningPushProtection")
	out.DependabotSecurityUpdates = get("dependabotSecurityUpdates")
	out.SecretScanningValidityChecks = get("secretScanningValidityChecks")
	return out
}
