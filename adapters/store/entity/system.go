package entity

import (
	"context"
	"errors"
	"fmt"

	"github.com/shipmight/shipmight/adapters/store/objstore"
	"github.com/shipmight/shipmight/internal/logging"
)

// SystemNamespace is the namespace holding the global-scope entities.
type SystemNamespace struct {
	Objects objstore.ObjectStore
	Name    string
}

// Ensure creates the namespace unless it exists. created reports whether this
// call created it.
func (s *SystemNamespace) Ensure(ctx context.Context) (created bool, err error) {
	name := s.Name
	if name == "" {
		name = DefaultSystemNamespace
	}
	logger := logging.FromContext(ctx).With("namespace", name)
	_, err = s.Objects.Create(ctx, "", newObject(objstore.Namespace, "", name))
	switch {
	case err == nil:
		logger.Info(ctx, "SystemNamespace:Ensure/created")
		return true, nil
	case errors.Is(err, objstore.ErrAlreadyExists):
		logger.Debug(ctx, "SystemNamespace:Ensure/exists")
		return false, nil
	}
	return false, fmt.Errorf("ensure system namespace %s: %w", name, err)
}
