package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"admanager/internal/adapter/remote"
	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// WarehouseProbe checks the warehouse connection settings.
type WarehouseProbe interface {
	Test(ctx context.Context) (*port.WarehouseStatus, error)
}

// ConsoleUseCase implements port.ConsoleUseCase. It routes every call to the
// catalog of the mode stored at the time of the call and applies the form
// rules: id generation, timestamps, budget exclusivity, parent lookup and
// ad set defaults.
type ConsoleUseCase struct {
	local  port.Catalog
	remote map[domain.Mode]port.Catalog
	modes  port.ModeSelector
	ids    port.IDGenerator
	probe  WarehouseProbe
	logger *slog.Logger

	// now returns the time stamped on saved records. Millisecond precision
	// keeps records equal across a JSON round trip.
	now func() time.Time
}

var _ port.ConsoleUseCase = (*ConsoleUseCase)(nil)

// NewConsoleUseCase wires the use case. ids must generate against local.
func NewConsoleUseCase(
	local port.Catalog,
	modes port.ModeSelector,
	ids port.IDGenerator,
	probe WarehouseProbe,
	logger *slog.Logger,
) *ConsoleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleUseCase{
		local: local,
		remote: map[domain.Mode]port.Catalog{
			domain.ModeMockAPI: remote.NewCatalog(domain.ModeMockAPI),
			domain.ModeAPI:     remote.NewCatalog(domain.ModeAPI),
		},
		modes:  modes,
		ids:    ids,
		probe:  probe,
		logger: logger,
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

// catalog resolves the backend for the current mode.
func (u *ConsoleUseCase) catalog(ctx context.Context) (port.Catalog, domain.Mode, error) {
	m, err := u.modes.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	if c, ok := u.remote[m]; ok {
		return c, m, nil
	}
	return u.local, m, nil
}

// writable resolves the backend for a write. Remote modes refuse writes
// before any lookup so the caller sees the outage rather than a missing
// parent.
func (u *ConsoleUseCase) writable(ctx context.Context, kind domain.Kind) (port.Catalog, error) {
	c, m, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	if m.Remote() {
		u.logger.WarnContext(ctx, "write refused in remote mode",
			slog.String("mode", string(m)), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("write %s via %s: %w", kind, m, domain.ErrRemoteUnavailable)
	}
	return c, nil
}

func (u *ConsoleUseCase) Mode(ctx context.Context) (domain.Mode, error) {
	return u.modes.Get(ctx)
}

func (u *ConsoleUseCase) SetMode(ctx context.Context, m domain.Mode) error {
	if err := u.modes.Set(ctx, m); err != nil {
		return err
	}
	u.logger.InfoContext(ctx, "database mode changed", slog.String("mode", string(m)))
	return nil
}

func (u *ConsoleUseCase) TestWarehouse(ctx context.Context) (*port.WarehouseStatus, error) {
	return u.probe.Test(ctx)
}

func (u *ConsoleUseCase) Export(ctx context.Context) (*port.Snapshot, error) {
	c, m, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	snap := &port.Snapshot{Mode: m}
	if snap.Clients, err = c.Clients().All(ctx); err != nil {
		return nil, err
	}
	if snap.Projects, err = c.Projects().All(ctx); err != nil {
		return nil, err
	}
	if snap.Campaigns, err = c.Campaigns().All(ctx); err != nil {
		return nil, err
	}
	if snap.AdSets, err = c.AdSets().All(ctx); err != nil {
		return nil, err
	}
	if snap.Ads, err = c.Ads().All(ctx); err != nil {
		return nil, err
	}
	return snap, nil
}

// get loads one record or reports domain.ErrNotFound.
func get[E domain.Record](ctx context.Context, col port.Collection[E], kind domain.Kind, id string) (*E, error) {
	e, err := col.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
	}
	return e, nil
}

// parent loads the record a new child points at.
func parent[E domain.Record](ctx context.Context, col port.Collection[E], kind domain.Kind, id string) (*E, error) {
	if id == "" {
		return nil, invalid("%s_id is required", kind)
	}
	e, err := col.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("selected %s %q: %w", kind, id, domain.ErrParentNotFound)
	}
	return e, nil
}

// remove deletes id after checking it exists. Children stay in place.
func remove[E domain.Record](ctx context.Context, u *ConsoleUseCase, col func(port.Catalog) port.Collection[E], kind domain.Kind, id string) error {
	c, err := u.writable(ctx, kind)
	if err != nil {
		return err
	}
	if _, err = get(ctx, col(c), kind, id); err != nil {
		return err
	}
	if err = col(c).Delete(ctx, id); err != nil {
		return err
	}
	u.logger.InfoContext(ctx, "record deleted", slog.String("kind", string(kind)), slog.String("id", id))
	return nil
}

// list returns the records under parentID, or all of them when it is empty.
func list[E domain.Record](ctx context.Context, u *ConsoleUseCase, col func(port.Catalog) port.Collection[E], parentID string) ([]E, error) {
	c, _, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	if parentID == "" {
		return col(c).All(ctx)
	}
	return col(c).ByParent(ctx, parentID)
}

// find returns the record with id from the current catalog.
func find[E domain.Record](ctx context.Context, u *ConsoleUseCase, col func(port.Catalog) port.Collection[E], kind domain.Kind, id string) (*E, error) {
	c, _, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return get(ctx, col(c), kind, id)
}

// reparented reports an attempt to move a record under another parent.
func reparented(kind domain.Kind, field, current, requested string) error {
	if requested == "" || requested == current {
		return nil
	}
	return invalid("%s %s cannot change from %q to %q", kind, field, current, requested)
}

func clients(c port.Catalog) port.Collection[domain.Client]     { return c.Clients() }
func projects(c port.Catalog) port.Collection[domain.Project]   { return c.Projects() }
func campaigns(c port.Catalog) port.Collection[domain.Campaign] { return c.Campaigns() }
func adSets(c port.Catalog) port.Collection[domain.AdSet]       { return c.AdSets() }
func ads(c port.Catalog) port.Collection[domain.Ad]             { return c.Ads() }
