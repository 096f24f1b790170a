package usecase

import (
	"context"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

func (u *ConsoleUseCase) CreateProject(ctx context.Context, in port.ProjectInput) (*domain.Project, error) {
	pr, err := projectFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindProject)
	if err != nil {
		return nil, err
	}
	cl, err := parent(ctx, c.Clients(), domain.KindClient, in.ClientID)
	if err != nil {
		return nil, err
	}
	id, err := u.ids.Next(ctx, domain.KindProject, cl.ClientID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	pr.ProjectID = id
	pr.ClientID, pr.ClientName = cl.ClientID, cl.ClientName
	pr.CreatedAt, pr.UpdatedAt = now, now
	if err = c.Projects().Save(ctx, pr); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "project created", slog.String("id", id))
	return &pr, nil
}

func (u *ConsoleUseCase) UpdateProject(ctx context.Context, id string, in port.ProjectInput) (*domain.Project, error) {
	pr, err := projectFrom(in)
	if err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindProject)
	if err != nil {
		return nil, err
	}
	old, err := get(ctx, c.Projects(), domain.KindProject, id)
	if err != nil {
		return nil, err
	}
	if err = reparented(domain.KindProject, "client_id", old.ClientID, in.ClientID); err != nil {
		return nil, err
	}
	pr.ProjectID, pr.ClientID, pr.ClientName = old.ProjectID, old.ClientID, old.ClientName
	if cl, err := c.Clients().ByID(ctx, old.ClientID); err != nil {
		return nil, err
	} else if cl != nil {
		pr.ClientName = cl.ClientName
	}
	pr.CreatedAt, pr.UpdatedAt = old.CreatedAt, u.now()
	if err = c.Projects().Save(ctx, pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (u *ConsoleUseCase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return find(ctx, u, projects, domain.KindProject, id)
}

func (u *ConsoleUseCase) ListProjects(ctx context.Context, clientID string) ([]domain.Project, error) {
	return list(ctx, u, projects, clientID)
}

func (u *ConsoleUseCase) DeleteProject(ctx context.Context, id string) error {
	return remove(ctx, u, projects, domain.KindProject, id)
}

func projectFrom(in port.ProjectInput) (domain.Project, error) {
	var p problems
	p.required("project_name", in.ProjectName)
	st := enum(&p, "status", in.Status, domain.StatusActive, domain.ProjectStatuses)
	start, end := utc(in.StartDate), utc(in.EndDate)
	if start != nil {
		p.window(*start, end, "start_date", "end_date")
	}
	if err := p.err(); err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		ProjectName: in.ProjectName,
		Description: in.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      st,
	}, nil
}
