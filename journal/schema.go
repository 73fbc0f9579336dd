package journal

const Schema = `
CREATE TABLE IF NOT EXISTS signals (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	time DATETIME NOT NULL,
	decision TEXT NOT NULL,
	short_ma REAL NOT NULL,
	long_ma REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS patterns (
	run_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	time DATETIME NOT NULL,
	pattern TEXT NOT NULL,
	direction TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_signals_run ON signals(run_id, time);
CREATE INDEX IF NOT EXISTS idx_patterns_run ON patterns(run_id, time);
`
