package config

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, postgresURL string) *Repository {
	return &Repository{
		backend:     backend,
		projectID:   projectID,
		postgresURL: postgresURL,
	}
}

// NewAuthProviderForTest creates an AuthProvider config for testing purposes
func NewAuthProviderForTest(backend, supabaseURL, supabaseKey, localSecret string) *AuthProvider {
	return &AuthProvider{
		backend:     backend,
		supabaseURL: supabaseURL,
		supabaseKey: supabaseKey,
		localSecret: localSecret,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn, environment string) *Sentry {
	return &Sentry{
		dsn:         dsn,
		environment: environment,
	}
}
