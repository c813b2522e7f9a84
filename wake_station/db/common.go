package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"wake/wake_station/global"
)

var db *sql.DB

func Init() {
	var err error
	db, err = sql.Open("sqlite3", global.Config.Db.Dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err = makeSureTableExist(); err != nil {
		log.Fatal(err)
	}
}

func Close() {
	_ = db.Close()
}

func makeSureTableExist() (err error) {
	_, err = db.Exec(`create table if not exists wake_events
(
    timestamp  int not null,
    weekday    int not null,
    alarm_hour int not null,
    alarm_min  int not null
);
create index if not exists wake_events_timestamp_index on wake_events (timestamp);`)
	return err
}
