package store

// Schema is the DDL for the single scores table. No primary key and no
// indexes: duplicate (game, player_name) rows are legal.
const Schema = `CREATE TABLE IF NOT EXISTS scores (game TEXT, score INTEGER, player_name TEXT)`

const (
	insertScoreSQL = `INSERT INTO scores (game, score, player_name) VALUES (?, ?, ?)`

	// The "*" filter is bound like any other value; it matches every row
	// through the first predicate.
	selectByGameSQL = `SELECT game, score, player_name FROM scores
		WHERE ? = '*' OR game = ?
		ORDER BY score DESC`

	countScoresSQL = `SELECT COUNT(*) FROM scores`
)
