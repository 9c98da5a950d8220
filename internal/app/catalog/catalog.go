// Package catalog holds the fixed SQL templates offered by the SQL panel.
package catalog

// CustomLabel is the sentinel entry: it pre-fills an empty editor.
const CustomLabel = "Custom SQL Query"

// Entry is one template: a display label and its literal SQL text.
type Entry struct {
	Label string `json:"label"`
	SQL   string `json:"sql"`
}

// entries are illustrative literals, not parameterized templates.
var entries = []Entry{
	{Label: CustomLabel, SQL: ""},
	{
		Label: "1. View Student Records",
		SQL: `SELECT StudentID, FirstName, LastName, Email, EnrollmentYear, DeptID
FROM STUDENT;`,
	},
	{
		Label: "2. View All Course Details",
		SQL: `SELECT CourseCode, CourseTitle, Credits, DeptID, InstructorID
FROM COURSE;`,
	},
	{
		Label: "3. Register Student in Course (Static Example)",
		SQL: `INSERT INTO REGISTRATION (Semester, Grade, StudentID, CourseCode)
VALUES ('Spring 2025', NULL, 1, '022400202');`,
	},
	{
		Label: "4. View Courses Registered by a Student (Student ID 1)",
		SQL: `SELECT
    R.RegistrationID,
    C.CourseTitle,
    R.Semester,
    R.Grade
FROM REGISTRATION R
JOIN COURSE C ON R.CourseCode = C.CourseCode
WHERE R.StudentID = 1;`,
	},
	{
		Label: "5. View Students Registered in a Course (Course 022400202)",
		SQL: `SELECT
    S.StudentID,
    S.FirstName,
    S.LastName,
    R.Semester,
    R.Grade
FROM REGISTRATION R
JOIN STUDENT S ON R.StudentID = S.StudentID
WHERE R.CourseCode = '022400202';`,
	},
	{
		Label: "6. Input Student Grades (Update Registration ID 1)",
		SQL: `UPDATE REGISTRATION
SET Grade = 'A'
WHERE RegistrationID = 1;`,
	},
	{
		Label: "7. Add New Course (Example: Data Mining)",
		SQL: `INSERT INTO COURSE (CourseCode, CourseTitle, Credits, Description, DeptID, InstructorID)
VALUES ('022400300', 'Data Mining', 3, 'Mining big datasets.', '01', 2);`,
	},
	{
		Label: "8. View Instructors and Their Assigned Courses",
		SQL: `SELECT
    I.InstructorID,
    I.FirstName,
    I.LastName,
    C.CourseTitle
FROM INSTRUCTOR I
LEFT JOIN COURSE C ON I.InstructorID = C.InstructorID;`,
	},
	{
		Label: "9. Student Count per Department",
		SQL: `SELECT DeptID, COUNT(*) AS NumberOfStudents
FROM STUDENT
GROUP BY DeptID;`,
	},
	{
		Label: "10. Delete Student Registration (Delete Registration ID 2)",
		SQL: `DELETE FROM REGISTRATION
WHERE RegistrationID = 2;`,
	},
}

var byLabel = func() map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Label] = e.SQL
	}
	return m
}()

// Lookup returns the statement for label. The sentinel yields "" with ok
// set; an unknown label yields "" with ok unset.
func Lookup(label string) (sql string, ok bool) {
	sql, ok = byLabel[label]
	return sql, ok
}

// Labels returns the labels in display order, sentinel first.
func Labels() []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

// Entries returns a copy of the catalog in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
