package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only structural invariants are checked here; whether the server or the
// client actually needs a given group is decided by the respective view
// constructors ([GetClientConfig] validates the client side).
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.PasswordMinLength < 1 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
