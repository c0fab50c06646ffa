package db_test

import (
	"context"
	"database/sql"
	"redactsync/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type entry struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"entries\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateTable(&entry{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Upsert", func() {
		When("the statement succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "entries" \("key","value"\) VALUES \(\$1,\$2\) ON CONFLICT \("key"\) DO UPDATE SET .*$`).
					WithArgs("claims", []byte("payload")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should insert or replace the record", func() {
				err := testDB.Upsert(ctx, &entry{Key: "claims", Value: []byte("payload")}, "key")
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "entries".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				err := testDB.Upsert(ctx, &entry{Key: "claims", Value: []byte("payload")}, "key")
				Expect(err).To(MatchError(ContainSubstring("upsert record")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE key = \$1 ORDER BY "entries"\."key" LIMIT \$2.*`).
					WithArgs("claims", 1).
					WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
						AddRow("claims", []byte("payload")))
			})

			It("should return the correct record", func() {
				var result entry
				err := testDB.GetOneBy(ctx, "key", "claims", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Key).To(Equal("claims"))
				Expect(result.Value).To(Equal([]byte("payload")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE key = \$1 ORDER BY "entries"\."key" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result entry
				err := testDB.GetOneBy(ctx, "key", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteBy", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "entries" WHERE key = \$1$`).
				WithArgs("claims").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should delete the matching records", func() {
			Expect(testDB.DeleteBy(ctx, "key", "claims", &entry{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
