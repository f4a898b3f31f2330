package store

import (
	"fmt"

	"github.com/TopiaNetwork/signer/codec"
	"github.com/TopiaNetwork/signer/identity"
	tplog "github.com/TopiaNetwork/signer/log"
)

// IdentitiesKey holds the serialized identity list. The suffix is the
// persisted format version.
const IdentitiesKey = "identities_v4"

// IdentityStore persists the whole identity list as one value.
type IdentityStore struct {
	log       tplog.Logger
	backend   Backend
	codecType codec.CodecType
}

func NewIdentityStore(log tplog.Logger, backend Backend, codecType codec.CodecType) *IdentityStore {
	return &IdentityStore{
		log:       log,
		backend:   backend,
		codecType: codecType,
	}
}

// Load returns the stored identities, or none when nothing was saved yet.
func (s *IdentityStore) Load() ([]*identity.Identity, error) {
	data, err := s.backend.Get([]byte(IdentitiesKey))
	if err != nil {
		return nil, fmt.Errorf("read identities: %w", err)
	}
	if data == nil {
		return []*identity.Identity{}, nil
	}

	ids, err := identity.DeserializeWith(s.codecType, data)
	if err != nil {
		s.log.Errorf("stored identities can't be decoded: %v", err)
		return nil, err
	}
	s.log.Debugf("loaded %d identities", len(ids))
	return ids, nil
}

func (s *IdentityStore) Save(ids []*identity.Identity) error {
	data, err := identity.SerializeWith(s.codecType, ids)
	if err != nil {
		return fmt.Errorf("encode identities: %w", err)
	}
	if err := s.backend.Set([]byte(IdentitiesKey), data); err != nil {
		return fmt.Errorf("write identities: %w", err)
	}
	s.log.Debugf("saved %d identities", len(ids))
	return nil
}

func (s *IdentityStore) Close() error {
	return s.backend.Close()
}
