package sql_test

import (
	"context"
	"errors"
	"time"

	"status-report-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testRecord struct {
	ID       string `gorm:"primaryKey"`
	ParentID string `gorm:"uniqueIndex:idx_test_parent_slot"`
	Slot     string `gorm:"uniqueIndex:idx_test_parent_slot"`
	Label    string
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&testRecord{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("Error translation", func() {
		ginkgo.When("a record does not exist", func() {
			ginkgo.It("should return ErrRecordNotFound", func() {
				var record testRecord
				err := orm.WithContext(ctx).First(&record, "id = ?", "missing").Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})

		ginkgo.When("a unique index is violated", func() {
			ginkgo.It("should return ErrDuplicatedKey", func() {
				err := orm.WithContext(ctx).Create(&testRecord{ID: "1", ParentID: "p", Slot: "a"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				err = orm.WithContext(ctx).Create(&testRecord{ID: "2", ParentID: "p", Slot: "a"}).Error()
				gomega.Expect(errors.Is(err, sql.ErrDuplicatedKey)).To(gomega.BeTrue())
			})

			ginkgo.It("should accept the same slot under another parent", func() {
				err := orm.WithContext(ctx).Create(&testRecord{ID: "1", ParentID: "p", Slot: "a"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				err = orm.WithContext(ctx).Create(&testRecord{ID: "2", ParentID: "q", Slot: "a"}).Error()
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Context("Isolation", func() {
		ginkgo.It("should give every memory ORM its own database", func() {
			err := orm.WithContext(ctx).Create(&testRecord{ID: "1", ParentID: "p", Slot: "a"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&testRecord{})).To(gomega.Succeed())

			var count int64
			err = other.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Updates", func() {
		ginkgo.It("should report the affected rows", func() {
			gomega.Expect(orm.WithContext(ctx).Create(&testRecord{ID: "1", ParentID: "p", Slot: "a"}).Error()).To(gomega.Succeed())
			gomega.Expect(orm.WithContext(ctx).Create(&testRecord{ID: "2", ParentID: "p", Slot: "b"}).Error()).To(gomega.Succeed())

			result := orm.WithContext(ctx).
				Model(&testRecord{}).
				Where("parent_id = ?", "p").
				Updates(map[string]any{"label": "synced"})
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(2)))
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("should roll back when the callback fails", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				if err := tx.WithContext(ctx).Create(&testRecord{ID: "1", ParentID: "p", Slot: "a"}).Error(); err != nil {
					return err
				}
				return errors.New("abort")
			})
			gomega.Expect(err).To(gomega.MatchError("abort"))

			var count int64
			err = orm.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should complete operations within timeout", func() {
			var count int64
			err := orm.WithTimeout(ctx, 2*time.Second).Model(&testRecord{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})
})
