package postgres

var schema = []string{
	`CREATE TABLE IF NOT EXISTS risk_scenarios (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL CHECK (name <> ''),
		description text NOT NULL DEFAULT '',
		mitigation_strategy text NOT NULL DEFAULT '',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id text PRIMARY KEY,
		role text NOT NULL CHECK (role IN ('PM', 'RC')),
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS risk_tables (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		project_manager_id text NOT NULL,
		risk_scenario_id uuid NOT NULL REFERENCES risk_scenarios (id),
		mitigation_status text NOT NULL
			CHECK (mitigation_status IN ('not mitigated', 'partially mitigated', 'fully mitigated')),
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS risk_tables_project_manager_id_idx
		ON risk_tables (project_manager_id, created_at)`,
}
