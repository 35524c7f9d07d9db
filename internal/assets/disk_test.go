package assets_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"recipebox/internal/assets"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("DiskStore", func() {
	var (
		store *assets.DiskStore
		dir   string
		ctx   context.Context
		err   error
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		ctx = context.Background()

		store, err = assets.NewDiskStore(zap.NewNop().Sugar(), dir)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Store", func() {
		It("should write the content under a unique name", func() {
			name, err := store.Store(ctx, strings.NewReader("image-bytes"), "dinner.jpg")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(HaveSuffix("_dinner.jpg"))

			content, err := os.ReadFile(filepath.Join(dir, name))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("image-bytes"))
		})

		It("should give two uploads of the same file distinct names", func() {
			first, err := store.Store(ctx, strings.NewReader("a"), "same.png")
			Expect(err).NotTo(HaveOccurred())
			second, err := store.Store(ctx, strings.NewReader("b"), "same.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("should strip path components from the original name", func() {
			name, err := store.Store(ctx, strings.NewReader("x"), "../../etc/passwd")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(HaveSuffix("_passwd"))
			Expect(name).NotTo(ContainSubstring("/"))
		})

		It("should leave no temp files behind", func() {
			_, err := store.Store(ctx, strings.NewReader("x"), "pic.png")
			Expect(err).NotTo(HaveOccurred())

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})

	Describe("Retrieve", func() {
		var name string

		BeforeEach(func() {
			name, err = store.Store(ctx, strings.NewReader("stored-content"), "soup.jpg")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should stream back the stored content", func() {
			reader, err := store.Retrieve(ctx, name)
			Expect(err).NotTo(HaveOccurred())
			defer reader.Close()

			content, err := io.ReadAll(reader)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("stored-content"))
		})

		When("the asset does not exist", func() {
			It("should return not found", func() {
				_, err := store.Retrieve(ctx, "missing.jpg")
				Expect(err).To(MatchError(assets.ErrNotFound))
			})
		})

		When("the name contains a path separator", func() {
			It("should return not found", func() {
				_, err := store.Retrieve(ctx, "../secret.txt")
				Expect(err).To(MatchError(assets.ErrNotFound))
			})
		})
	})

	Describe("Delete", func() {
		It("should remove a stored asset", func() {
			name, err := store.Store(ctx, strings.NewReader("bye"), "old.jpg")
			Expect(err).NotTo(HaveOccurred())

			store.Delete(ctx, name)

			_, err = os.Stat(filepath.Join(dir, name))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("should tolerate a missing asset", func() {
			store.Delete(ctx, "never-existed.jpg")
		})

		It("should refuse names with path separators", func() {
			outside := filepath.Join(dir, "..", "outside.txt")
			Expect(os.WriteFile(outside, []byte("keep"), 0o644)).To(Succeed())
			defer os.Remove(outside)

			store.Delete(ctx, "../outside.txt")

			_, err := os.Stat(outside)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("SanitizeFilename", func() {
		It("should keep safe characters", func() {
			Expect(assets.SanitizeFilename("my-recipe_01.jpg")).To(Equal("my-recipe_01.jpg"))
		})

		It("should replace unsafe characters", func() {
			Expect(assets.SanitizeFilename("spicy soup (v2).png")).To(Equal("spicy_soup__v2_.png"))
		})

		It("should strip windows style paths", func() {
			Expect(assets.SanitizeFilename(`C:\Users\me\cake.jpg`)).To(Equal("cake.jpg"))
		})

		It("should fall back when nothing survives", func() {
			Expect(assets.SanitizeFilename("...")).To(Equal("file"))
		})
	})
})
