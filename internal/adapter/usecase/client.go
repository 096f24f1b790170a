package usecase

import (
	"context"
	"log/slog"

	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

func (u *ConsoleUseCase) CreateClient(ctx context.Context, in port.ClientInput) (*domain.Client, error) {
	if err := checkClient(in); err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindClient)
	if err != nil {
		return nil, err
	}
	id, err := u.ids.Next(ctx, domain.KindClient, "")
	if err != nil {
		return nil, err
	}
	now := u.now()
	cl := clientFrom(in)
	cl.ClientID = id
	cl.CreatedAt, cl.UpdatedAt = now, now
	if err = c.Clients().Save(ctx, cl); err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "client created", slog.String("id", id))
	return &cl, nil
}

func (u *ConsoleUseCase) UpdateClient(ctx context.Context, id string, in port.ClientInput) (*domain.Client, error) {
	if err := checkClient(in); err != nil {
		return nil, err
	}
	c, err := u.writable(ctx, domain.KindClient)
	if err != nil {
		return nil, err
	}
	old, err := get(ctx, c.Clients(), domain.KindClient, id)
	if err != nil {
		return nil, err
	}
	cl := clientFrom(in)
	cl.ClientID = old.ClientID
	cl.CreatedAt, cl.UpdatedAt = old.CreatedAt, u.now()
	if err = c.Clients().Save(ctx, cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (u *ConsoleUseCase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return find(ctx, u, clients, domain.KindClient, id)
}

func (u *ConsoleUseCase) ListClients(ctx context.Context) ([]domain.Client, error) {
	return list(ctx, u, clients, "")
}

func (u *ConsoleUseCase) DeleteClient(ctx context.Context, id string) error {
	return remove(ctx, u, clients, domain.KindClient, id)
}

func checkClient(in port.ClientInput) error {
	var p problems
	p.required("client_name", in.ClientName)
	if in.Email != "" && !validEmail(in.Email) {
		p.add("email %q is not an address", in.Email)
	}
	return p.err()
}

func clientFrom(in port.ClientInput) domain.Client {
	return domain.Client{
		ClientName:       in.ClientName,
		IndustryCategory: in.IndustryCategory,
		ContactPerson:    in.ContactPerson,
		Email:            in.Email,
		Phone:            in.Phone,
	}
}
