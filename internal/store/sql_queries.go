package store

import (
	"github.com/Masterminds/squirrel"
)

// Placeholders use the $N format, which both the pgx stdlib driver and
// mattn/go-sqlite3 accept when every placeholder is used once, in order.
const (
	createUser = `INSERT INTO fs_users (username, password, userhousehold, administrator)
    VALUES ($1, $2, $3, $4)
    RETURNING userid, username, password, userhousehold, administrator;`

	getAllUsers = `SELECT userid, username, password, userhousehold, administrator
    FROM fs_users
    ORDER BY userid;`

	getUserByID = `SELECT userid, username, password, userhousehold, administrator
    FROM fs_users
    WHERE userid = $1;`

	getUserByUsername = `SELECT userid, username, password, userhousehold, administrator
    FROM fs_users
    WHERE username = $1;`

	getUsersByHousehold = `SELECT userid, username, password, userhousehold, administrator
    FROM fs_users
    WHERE userhousehold = $1
    ORDER BY userid;`

	deleteUser = `DELETE FROM fs_users WHERE userid = $1;`

	createHousehold = `INSERT INTO fs_households (householdname)
    VALUES ($1)
    RETURNING householdid, householdname;`

	getAllHouseholds = `SELECT householdid, householdname
    FROM fs_households
    ORDER BY householdid;`

	getHouseholdByID = `SELECT householdid, householdname
    FROM fs_households
    WHERE householdid = $1;`

	deleteHousehold = `DELETE FROM fs_households WHERE householdid = $1;`

	createChore = `INSERT INTO fs_chores (chorename, chorehousehold, choreuser)
    VALUES ($1, $2, $3)
    RETURNING choreid, chorename, chorehousehold, choreuser;`

	getAllChores = `SELECT choreid, chorename, chorehousehold, choreuser
    FROM fs_chores
    ORDER BY choreid;`

	getChoreByID = `SELECT choreid, chorename, chorehousehold, choreuser
    FROM fs_chores
    WHERE choreid = $1;`

	getChoresByHousehold = `SELECT choreid, chorename, chorehousehold, choreuser
    FROM fs_chores
    WHERE chorehousehold = $1
    ORDER BY choreid;`

	deleteChore = `DELETE FROM fs_chores WHERE choreid = $1;`
)

// buildUpdateQuery dynamically builds a partial UPDATE statement from the
// caller-validated column/value map.
func buildUpdateQuery(table, idColumn string, id int64, updates map[string]any) (string, []any, error) {
	if len(updates) == 0 {
		return "", nil, ErrBuildingSQLQuery
	}

	query, args, err := squirrel.
		Update(table).
		SetMap(updates).
		Where(squirrel.Eq{idColumn: id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
