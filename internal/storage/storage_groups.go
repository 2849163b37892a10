package storage

// DisableGroup marks a command group as disabled for a guild.
func (s *Storage) DisableGroup(guildID, group string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	for _, g := range record.DisabledGroups {
		if g == group {
			return nil
		}
	}

	record.DisabledGroups = append(record.DisabledGroups, group)
	s.ds.Add(guildID, record)
	return nil
}

// EnableGroup removes a command group from the guild's disabled set.
func (s *Storage) EnableGroup(guildID, group string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(record.DisabledGroups))
	for _, g := range record.DisabledGroups {
		if g != group {
			updated = append(updated, g)
		}
	}
	record.DisabledGroups = updated
	s.ds.Add(guildID, record)
	return nil
}

func (s *Storage) IsGroupDisabled(guildID, group string) (bool, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return false, err
	}
	for _, g := range record.DisabledGroups {
		if g == group {
			return true, nil
		}
	}
	return false, nil
}

func (s *Storage) GetDisabledGroups(guildID string) ([]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.DisabledGroups, nil
}
