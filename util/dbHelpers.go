package util

import (
	"fmt"
)

func ddlStrings() []string {
	sqlStrings := []string{}
	sqlStrings = append(sqlStrings,
		`CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    mobile VARCHAR(32) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(64) NOT NULL DEFAULT 'user',
    is_active BOOLEAN DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE TABLE IF NOT EXISTS subjects (
    id SERIAL PRIMARY KEY,
    subject_name VARCHAR(255) NOT NULL,
    no_of_questions INT,
    is_active BOOLEAN DEFAULT true,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS chapters (
    id SERIAL PRIMARY KEY,
    no VARCHAR(50) NOT NULL,
    name VARCHAR(255) NOT NULL,
    formatted_name VARCHAR(255) NOT NULL,
    no_of_questions INT,
    is_active BOOLEAN DEFAULT true,
    subject_id INT NOT NULL,
    FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE
)`,
		`CREATE TABLE IF NOT EXISTS topics (
    id SERIAL PRIMARY KEY,
    no VARCHAR(50) NOT NULL,
    name VARCHAR(255) NOT NULL,
    formatted_name VARCHAR(255) NOT NULL,
    no_of_questions INT,
    is_active BOOLEAN DEFAULT true,
    chapter_id INT NOT NULL,
    FOREIGN KEY (chapter_id) REFERENCES chapters(id) ON DELETE CASCADE
)`,
		`CREATE TABLE IF NOT EXISTS questions (
    id SERIAL PRIMARY KEY,
    source VARCHAR(255) NOT NULL,
    year VARCHAR(50) NOT NULL,
    subject VARCHAR(255) NOT NULL,
    chapter VARCHAR(255) NOT NULL,
    topic VARCHAR(255) NOT NULL,
    question_number VARCHAR(50) NOT NULL,
    question_text TEXT NOT NULL,
    difficulty VARCHAR(50),
    has_diagram BOOLEAN DEFAULT false,
    diagram_description TEXT,
    diagram_position VARCHAR(50),
    diagram_name TEXT,
    answer VARCHAR(50) NOT NULL,
    ai_answer TEXT,
    solution TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS options (
    id SERIAL PRIMARY KEY,
    question_id INT NOT NULL,
    label VARCHAR(50) NOT NULL,
    text TEXT NOT NULL,
    has_diagram BOOLEAN DEFAULT false,
    diagram_description TEXT,
    diagram_name TEXT,
    FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
)`,
		`CREATE TABLE IF NOT EXISTS stage_questions (
    id SERIAL PRIMARY KEY,
    source VARCHAR(255) NOT NULL,
    year VARCHAR(50) NOT NULL,
    subject VARCHAR(255) NOT NULL,
    chapter VARCHAR(255) NOT NULL,
    topic VARCHAR(255) NOT NULL,
    question_number VARCHAR(50) NOT NULL,
    question_text TEXT NOT NULL,
    difficulty VARCHAR(50),
    has_diagram BOOLEAN DEFAULT false,
    diagram_description TEXT,
    diagram_position VARCHAR(50),
    diagram_name TEXT,
    answer VARCHAR(50) NOT NULL,
    ai_answer TEXT,
    solution TEXT,
    reviewed BOOLEAN DEFAULT false,
    published_question_id INT REFERENCES questions(id) ON DELETE SET NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS stage_options (
    id SERIAL PRIMARY KEY,
    question_id INT NOT NULL,
    label VARCHAR(50) NOT NULL,
    text TEXT NOT NULL,
    has_diagram BOOLEAN DEFAULT false,
    diagram_description TEXT,
    diagram_name TEXT,
    FOREIGN KEY (question_id) REFERENCES stage_questions(id) ON DELETE CASCADE
)`,
		`CREATE TABLE IF NOT EXISTS mock_tests (
    id SERIAL PRIMARY KEY,
    marks_scored INT DEFAULT 0,
    test_status VARCHAR(50) NOT NULL,
    questions JSONB,
    time_taken INT DEFAULT 0,
    user_id INT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
)`,
		`CREATE TABLE IF NOT EXISTS test_settings (
    id SERIAL PRIMARY KEY,
    key VARCHAR(255) NOT NULL,
    value TEXT NOT NULL,
    is_active BOOLEAN DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return sqlStrings
}

func CreateTableIfNotExists() error {
	sqlStrings := ddlStrings()
	for i, sql := range sqlStrings {
		_, err := DB.Exec(sql)
		if err != nil {
			return fmt.Errorf("error creating table %d: %w", i, err)
		}
	}
	return nil
}

func DropTables() error {
	stmts := []string{
		"DROP TABLE IF EXISTS test_settings",
		"DROP TABLE IF EXISTS mock_tests",
		"DROP TABLE IF EXISTS stage_options",
		"DROP TABLE IF EXISTS stage_questions",
		"DROP TABLE IF EXISTS options",
		"DROP TABLE IF EXISTS questions",
		"DROP TABLE IF EXISTS topics",
		"DROP TABLE IF EXISTS chapters",
		"DROP TABLE IF EXISTS subjects",
		"DROP TABLE IF EXISTS users",
	}
	for _, stmt := range stmts {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
