package repository_test

import (
	"context"
	"errors"
	"redactsync/internal/db"
	"redactsync/internal/repository"
	"redactsync/internal/repository/fake"
	"redactsync/internal/storage"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ storage.KV = (*repository.KVRepository)(nil)

var _ = Describe("KVRepository", func() {
	var (
		repo        *repository.KVRepository
		fakeStorage *fake.Storage
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStorage = new(fake.Storage)
		repo = repository.NewKVRepository(fakeStorage)
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate the kv table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.KVEntry{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("Get", func() {
		var (
			value []byte
			err   error
		)

		JustBeforeEach(func() {
			value, err = repo.Get(ctx, "claims")
		})

		When("the entry exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, v any, entity any) error {
					Expect(column).To(Equal("key"))
					Expect(v).To(Equal("claims"))
					entity.(*repository.KVEntry).Value = []byte("payload")
					return nil
				}
			})

			It("should return the stored bytes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal([]byte("payload")))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return storage.ErrNotFound", func() {
				Expect(err).To(MatchError(storage.ErrNotFound))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(errors.New("conn reset"))
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(`get entry "claims": conn reset`))
			})
		})
	})

	Describe("Put", func() {
		var err error

		BeforeEach(func() {
			repository.TimeNow = func() time.Time { return time.Unix(1_700_000_000, 0) }
		})

		AfterEach(func() {
			repository.TimeNow = time.Now
		})

		JustBeforeEach(func() {
			err = repo.Put(ctx, "tokens", []byte("payload"))
		})

		It("should upsert on the key column", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))

			_, record, column := fakeStorage.UpsertArgsForCall(0)
			Expect(column).To(Equal("key"))
			entry := record.(*repository.KVEntry)
			Expect(entry.Key).To(Equal("tokens"))
			Expect(entry.Value).To(Equal([]byte("payload")))
			Expect(entry.UpdatedAt).To(Equal(time.Unix(1_700_000_000, 0).UTC()))
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(errors.New("disk full"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(`put entry "tokens": disk full`))
			})
		})
	})

	Describe("Delete", func() {
		It("should delete by key", func() {
			Expect(repo.Delete(ctx, "claims")).To(Succeed())

			_, column, value, model := fakeStorage.DeleteByArgsForCall(0)
			Expect(column).To(Equal("key"))
			Expect(value).To(Equal("claims"))
			Expect(model).To(BeAssignableToTypeOf(&repository.KVEntry{}))
		})
	})
})
