package constants

// Role names as they appear in JWT claims and the users table.
const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

var (
	AdminOnly = []string{
		RoleAdmin,
	}

	TrainerAndAbove = []string{
		RoleTrainer,
		RoleAdmin,
	}

	AllRoles = []string{
		RoleStudent,
		RoleTrainer,
		RoleAdmin,
	}
)
