package repository_test

import (
	"context"
	"errors"

	"recipebox/internal/db"
	"recipebox/internal/repository"
	"recipebox/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecipeRepository", func() {
	var (
		repo        *repository.RecipeRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRecipeRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and recipe tables", func() {
				Expect(repo.Migrate()).To(Succeed())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Recipe{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hashed_password")
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.User).ID = 1
					return nil
				}
			})

			It("should insert the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hashed_password"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
			})
		})

		When("a concurrent insert wins the race", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(repository.ErrUsernameTaken))
			})
		})

		When("the username check fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					*dest.(*repository.User) = repository.User{ID: 1, Username: "alice"}
					return nil
				}
			})

			It("should return the user", func() {
				user, err := repo.GetUserByUsername(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				_, err := repo.GetUserByUsername(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetUserByID", func() {
		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				_, err := repo.GetUserByID(ctx, 99)
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateRecipe", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.Recipe).ID = 5
					return nil
				}
			})

			It("should return the recipe with its generated id", func() {
				recipe, err := repo.CreateRecipe(ctx, repository.Recipe{UserID: 2, Title: "Soup"})
				Expect(err).NotTo(HaveOccurred())
				Expect(recipe.ID).To(Equal(uint(5)))
				Expect(recipe.Title).To(Equal("Soup"))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.CreateRecipe(ctx, repository.Recipe{})
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListRecipes", func() {
		When("recipes from several owners exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllWhereStub = func(ctx context.Context, conds map[string]any, order string, dest any) error {
					*dest.(*[]repository.Recipe) = []repository.Recipe{
						{ID: 1, UserID: 10, Title: "Soup"},
						{ID: 2, UserID: 20, Title: "Cake"},
						{ID: 3, UserID: 10, Title: "Stew"},
					}
					return nil
				}
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					*dest.(*[]repository.User) = []repository.User{
						{ID: 10, Username: "alice"},
						{ID: 20, Username: "bob"},
					}
					return nil
				}
			})

			It("should attach the owner's username to every row", func() {
				rows, err := repo.ListRecipes(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(HaveLen(3))
				Expect(rows[0].Username).To(Equal("alice"))
				Expect(rows[1].Username).To(Equal("bob"))
				Expect(rows[2].Username).To(Equal("alice"))

				_, conds, order, _ := fakeStorage.GetAllWhereArgsForCall(0)
				Expect(conds).To(BeNil())
				Expect(order).To(Equal("created_at DESC"))

				Expect(fakeStorage.GetAllByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal([]uint{10, 20}))
			})
		})

		When("no recipes exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllWhereReturns(nil)
			})

			It("should return an empty slice without looking up owners", func() {
				rows, err := repo.ListRecipes(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(BeEmpty())
				Expect(fakeStorage.GetAllByCallCount()).To(Equal(0))
			})
		})

		When("the recipe query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllWhereReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.ListRecipes(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListRecipesByOwner", func() {
		BeforeEach(func() {
			fakeStorage.GetAllWhereStub = func(ctx context.Context, conds map[string]any, order string, dest any) error {
				*dest.(*[]repository.Recipe) = []repository.Recipe{
					{ID: 1, UserID: 10, Title: "Soup"},
				}
				return nil
			}
			fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
				*dest.(*[]repository.User) = []repository.User{{ID: 10, Username: "alice"}}
				return nil
			}
		})

		It("should filter by the owner id", func() {
			rows, err := repo.ListRecipesByOwner(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))

			_, conds, _, _ := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(conds).To(Equal(map[string]any{"user_id": uint(10)}))
		})
	})

	Describe("GetRecipeByOwner", func() {
		When("the recipe belongs to the owner", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereStub = func(ctx context.Context, conds map[string]any, dest any) error {
					*dest.(*repository.Recipe) = repository.Recipe{ID: 7, UserID: 2, Title: "Soup"}
					return nil
				}
			})

			It("should query with the compound condition", func() {
				recipe, err := repo.GetRecipeByOwner(ctx, 7, 2)
				Expect(err).NotTo(HaveOccurred())
				Expect(recipe.ID).To(Equal(uint(7)))

				_, conds, _ := fakeStorage.GetOneWhereArgsForCall(0)
				Expect(conds).To(Equal(map[string]any{"id": uint(7), "user_id": uint(2)}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return recipe not found error", func() {
				_, err := repo.GetRecipeByOwner(ctx, 7, 99)
				Expect(err).To(MatchError(repository.ErrRecipeNotFound))
			})
		})
	})

	Describe("UpdateRecipeByOwner", func() {
		var (
			values map[string]any
			err    error
		)

		BeforeEach(func() {
			values = map[string]any{"title": "Better Soup"}
		})

		JustBeforeEach(func() {
			err = repo.UpdateRecipeByOwner(ctx, 7, 2, values)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("should update through the compound condition", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
				_, model, conds, argValues := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Recipe{}))
				Expect(conds).To(Equal(map[string]any{"id": uint(7), "user_id": uint(2)}))
				Expect(argValues).To(Equal(values))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return recipe not found error", func() {
				Expect(err).To(MatchError(repository.ErrRecipeNotFound))
			})
		})

		When("there is nothing to update", func() {
			BeforeEach(func() {
				values = map[string]any{}
			})

			It("should succeed without touching the database", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(0))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteRecipeByOwner", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteRecipeByOwner(ctx, 7, 2)
		})

		When("a row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(1, nil)
			})

			It("should delete through the compound condition", func() {
				Expect(err).NotTo(HaveOccurred())

				_, model, conds := fakeStorage.DeleteWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Recipe{}))
				Expect(conds).To(Equal(map[string]any{"id": uint(7), "user_id": uint(2)}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, nil)
			})

			It("should return recipe not found error", func() {
				Expect(err).To(MatchError(repository.ErrRecipeNotFound))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
