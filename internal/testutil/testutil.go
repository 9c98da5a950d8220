// Package testutil builds throwaway university databases for tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/uniadmin/internal/config"
	"github.com/yigit/uniadmin/internal/db"
)

// Schema mirrors the production tables closely enough for every canned
// statement to run unchanged.
const Schema = `
CREATE TABLE DEPARTMENT (
	DeptID   VARCHAR(10) PRIMARY KEY,
	DeptName VARCHAR(100) NOT NULL
);
CREATE TABLE INSTRUCTOR (
	InstructorID INTEGER PRIMARY KEY,
	FirstName    VARCHAR(50) NOT NULL,
	LastName     VARCHAR(50) NOT NULL,
	Email        VARCHAR(100),
	DeptID       VARCHAR(10) REFERENCES DEPARTMENT(DeptID)
);
CREATE TABLE STUDENT (
	StudentID      INTEGER PRIMARY KEY,
	FirstName      VARCHAR(50) NOT NULL,
	LastName       VARCHAR(50) NOT NULL,
	Email          VARCHAR(100) UNIQUE,
	Phone          VARCHAR(20),
	DateOfBirth    DATE,
	EnrollmentYear INTEGER,
	DeptID         VARCHAR(10) REFERENCES DEPARTMENT(DeptID)
);
CREATE TABLE COURSE (
	CourseCode   VARCHAR(20) PRIMARY KEY,
	CourseTitle  VARCHAR(100) NOT NULL,
	Credits      INTEGER NOT NULL,
	Description  TEXT,
	DeptID       VARCHAR(10) REFERENCES DEPARTMENT(DeptID),
	InstructorID INTEGER REFERENCES INSTRUCTOR(InstructorID)
);
CREATE TABLE REGISTRATION (
	RegistrationID INTEGER PRIMARY KEY,
	Semester       VARCHAR(20) NOT NULL,
	Grade          VARCHAR(2),
	StudentID      INTEGER NOT NULL REFERENCES STUDENT(StudentID),
	CourseCode     VARCHAR(20) NOT NULL REFERENCES COURSE(CourseCode)
);
`

// SeedData is a small consistent data set: 2 departments, 2 instructors,
// 3 students, 2 courses and 2 registrations.
const SeedData = `
INSERT INTO DEPARTMENT (DeptID, DeptName) VALUES ('01', 'Computer Science');
INSERT INTO DEPARTMENT (DeptID, DeptName) VALUES ('02', 'Mathematics');
INSERT INTO INSTRUCTOR (InstructorID, FirstName, LastName, Email, DeptID) VALUES (1, 'Ada', 'Lovelace', 'ada@uni.edu', '01');
INSERT INTO INSTRUCTOR (InstructorID, FirstName, LastName, Email, DeptID) VALUES (2, 'Alan', 'Turing', 'alan@uni.edu', '01');
INSERT INTO STUDENT (StudentID, FirstName, LastName, Email, Phone, DateOfBirth, EnrollmentYear, DeptID) VALUES (1, 'Grace', 'Hopper', 'grace@uni.edu', '555-0101', '2003-05-01', 2022, '01');
INSERT INTO STUDENT (StudentID, FirstName, LastName, Email, Phone, DateOfBirth, EnrollmentYear, DeptID) VALUES (2, 'Edsger', 'Dijkstra', 'edsger@uni.edu', '555-0102', '2004-02-11', 2023, '01');
INSERT INTO STUDENT (StudentID, FirstName, LastName, Email, Phone, DateOfBirth, EnrollmentYear, DeptID) VALUES (3, 'Emmy', 'Noether', 'emmy@uni.edu', NULL, '2002-03-23', 2021, '02');
INSERT INTO COURSE (CourseCode, CourseTitle, Credits, Description, DeptID, InstructorID) VALUES ('022400202', 'Database Systems', 3, 'Relational databases.', '01', 1);
INSERT INTO COURSE (CourseCode, CourseTitle, Credits, Description, DeptID, InstructorID) VALUES ('022400100', 'Discrete Mathematics', 4, NULL, '02', 2);
INSERT INTO REGISTRATION (RegistrationID, Semester, Grade, StudentID, CourseCode) VALUES (1, 'Spring 2025', NULL, 1, '022400202');
INSERT INTO REGISTRATION (RegistrationID, Semester, Grade, StudentID, CourseCode) VALUES (2, 'Spring 2025', 'B', 2, '022400202');
`

// Config returns a sqlite configuration pointing at a fresh file in a temp dir.
func Config(t testing.TB) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "university.db")
	cfg.Database.ConnectTimeout = "5s"
	cfg.Enrollment.Semester = "Spring 2025"
	return cfg
}

// NewConnector opens a connector on a new sqlite database holding Schema and
// SeedData. The connector is closed when the test ends.
func NewConnector(t testing.TB) *db.Connector {
	t.Helper()

	conn := NewEmptyConnector(t)
	Exec(t, conn, SeedData)
	return conn
}

// NewEmptyConnector is NewConnector without SeedData.
func NewEmptyConnector(t testing.TB) *db.Connector {
	t.Helper()

	c, err := db.Open(Config(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	Exec(t, c, Schema)
	return c
}

// Exec runs each ';'-separated statement of script on one connection.
func Exec(t testing.TB, c *db.Connector, script string) {
	t.Helper()

	err := c.WithConn(context.Background(), func(ctx context.Context, conn *sql.Conn) error {
		for _, stmt := range strings.Split(script, ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// Count returns SELECT COUNT(*) for a table, for asserting side effects.
func Count(t testing.TB, c *db.Connector, table string) int {
	t.Helper()

	var n int
	err := c.WithConn(context.Background(), func(ctx context.Context, conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	})
	require.NoError(t, err)
	return n
}
