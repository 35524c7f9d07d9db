package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"recipebox/internal/core"
	"recipebox/internal/http/handler"
	"recipebox/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func multipartRequest(method, target string, fields map[string]string, imageName string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		Expect(writer.WriteField(key, value)).To(Succeed())
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		Expect(err).NotTo(HaveOccurred())
		_, err = part.Write([]byte("image-bytes"))
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(writer.Close()).To(Succeed())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

var _ = Describe("RecipeHandler", func() {
	var (
		rh            *handler.RecipeHandler
		fakeService   *fake.RecipeService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.RecipeService)
		fakeValidator = new(fake.RequestValidator)

		w = httptest.NewRecorder()
		rh = handler.NewRecipeHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		var response map[string]any

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"secret123"}`)
			req = httptest.NewRequest("POST", "/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}

			fakeService.RegisterReturns(core.AuthResult{
				UserID:   1,
				Username: "alice",
				Token:    "signed.token",
			}, nil)
		})

		JustBeforeEach(func() {
			rh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with id, username and token", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["id"]).To(Equal(float64(1)))
				Expect(response["username"]).To(Equal("alice"))
				Expect(response["token"]).To(Equal("signed.token"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, argCreds := fakeService.RegisterArgsForCall(0)
				Expect(argCreds).To(Equal(core.Credentials{Username: "alice", Password: "secret123"}))
			})
		})

		When("the payload fails validation", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.AuthResult{}, core.ErrUsernameTaken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("username already taken"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.AuthResult{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"secret123"}`)
			req = httptest.NewRequest("POST", "/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}

			fakeService.LoginReturns(core.AuthResult{
				UserID:   1,
				Username: "alice",
				Token:    "signed.token",
			}, nil)
		})

		JustBeforeEach(func() {
			rh.HandleLogin(w, req)
		})

		When("the credentials are correct", func() {
			It("should return 200 with a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("signed.token"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.AuthResult{}, core.ErrUserNotFound)
			})

			It("should return 401 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid username or password"))
				Expect(w.Body.String()).NotTo(ContainSubstring("user not found"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.AuthResult{}, core.ErrIncorrectPassword)
			})

			It("should return 401 with the same generic message", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid username or password"))
			})
		})
	})

	Describe("HandleMe", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/me", nil)
			req.Header.Set("Authorization", "Bearer some.token")
			fakeService.MeReturns(core.UserRecord{ID: 1, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			rh.HandleMe(w, req)
		})

		When("the token is valid", func() {
			It("should return the current user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))

				_, argToken := fakeService.MeArgsForCall(0)
				Expect(argToken).To(Equal("some.token"))
			})
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.MeCallCount()).To(Equal(0))
			})
		})

		When("the header is not a bearer token", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.MeCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.MeReturns(core.UserRecord{}, core.ErrInvalidToken)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleGetRecipes", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/recipes", nil)
		})

		JustBeforeEach(func() {
			rh.HandleGetRecipes(w, req)
		})

		When("listing succeeds", func() {
			BeforeEach(func() {
				fakeService.ListRecipesReturns([]core.RecipeRecord{
					{ID: 1, Title: "Soup", Username: "alice"},
				}, nil)
			})

			It("should return the recipes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Soup"))
				Expect(w.Body.String()).To(ContainSubstring("alice"))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListRecipesReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetMyRecipes", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/myrecipes", nil)
			req.Header.Set("Authorization", "Bearer some.token")
		})

		JustBeforeEach(func() {
			rh.HandleGetMyRecipes(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeService.ListMyRecipesReturns([]core.RecipeRecord{
					{ID: 1, Title: "Soup"},
				}, nil)
			})

			It("should return the caller's recipes", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				_, argToken := fakeService.ListMyRecipesArgsForCall(0)
				Expect(argToken).To(Equal("some.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.ListMyRecipesReturns(nil, core.ErrInvalidToken)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListMyRecipesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleCreateRecipe", func() {
		BeforeEach(func() {
			req = multipartRequest("POST", "/recipes", map[string]string{
				"title":       "Pancakes",
				"description": "Fluffy",
				"category":    "breakfast",
				"ingredients": "flour, eggs",
			}, "pancakes.jpg")
			req.Header.Set("Authorization", "Bearer some.token")

			fakeService.CreateRecipeReturns(core.RecipeRecord{ID: 11, Title: "Pancakes"}, nil)
		})

		JustBeforeEach(func() {
			rh.HandleCreateRecipe(w, req)
		})

		When("the form is complete", func() {
			It("should return 201 with the created recipe", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("Pancakes"))

				Expect(fakeService.CreateRecipeCallCount()).To(Equal(1))
				_, argToken, argInput := fakeService.CreateRecipeArgsForCall(0)
				Expect(argToken).To(Equal("some.token"))
				Expect(argInput.Title).To(Equal("Pancakes"))
				Expect(argInput.Ingredients).To(Equal("flour, eggs"))
				Expect(argInput.Image).NotTo(BeNil())
				Expect(argInput.Image.Filename).To(Equal("pancakes.jpg"))

				content, err := io.ReadAll(argInput.Image.Content)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(content)).To(Equal("image-bytes"))
			})
		})

		When("no image part is sent", func() {
			BeforeEach(func() {
				req = multipartRequest("POST", "/recipes", map[string]string{
					"title":       "Pancakes",
					"description": "Fluffy",
					"category":    "breakfast",
				}, "")
				req.Header.Set("Authorization", "Bearer some.token")
			})

			It("should create the recipe without an image", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				_, _, argInput := fakeService.CreateRecipeArgsForCall(0)
				Expect(argInput.Image).To(BeNil())
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				req = multipartRequest("POST", "/recipes", map[string]string{
					"title": "Pancakes",
				}, "")
				req.Header.Set("Authorization", "Bearer some.token")
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateRecipeCallCount()).To(Equal(0))
			})
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CreateRecipeCallCount()).To(Equal(0))
			})
		})

		When("the body is not multipart", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/recipes", strings.NewReader("{}"))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer some.token")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleUpdateRecipe", func() {
		BeforeEach(func() {
			req = multipartRequest("PUT", "/recipes/7", map[string]string{
				"title": "Better Soup",
			}, "")
			req.SetPathValue("id", "7")
			req.Header.Set("Authorization", "Bearer some.token")

			fakeService.UpdateRecipeReturns(core.RecipeRecord{ID: 7, Title: "Better Soup"}, nil)
		})

		JustBeforeEach(func() {
			rh.HandleUpdateRecipe(w, req)
		})

		When("the update succeeds", func() {
			It("should return 200 with the updated recipe", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Better Soup"))

				Expect(fakeService.UpdateRecipeCallCount()).To(Equal(1))
				_, argToken, argID, argInput := fakeService.UpdateRecipeArgsForCall(0)
				Expect(argToken).To(Equal("some.token"))
				Expect(argID).To(Equal(uint(7)))
				Expect(argInput.Title).To(Equal("Better Soup"))
				Expect(argInput.Description).To(BeEmpty())
			})
		})

		When("the recipe is not owned by the caller", func() {
			BeforeEach(func() {
				fakeService.UpdateRecipeReturns(core.RecipeRecord{}, core.ErrRecipeNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 404 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.UpdateRecipeCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeService.UpdateRecipeReturns(core.RecipeRecord{}, core.ErrInvalidToken)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleDeleteRecipe", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/recipes/7", nil)
			req.SetPathValue("id", "7")
			req.Header.Set("Authorization", "Bearer some.token")
			fakeService.DeleteRecipeReturns(nil)
		})

		JustBeforeEach(func() {
			rh.HandleDeleteRecipe(w, req)
		})

		When("the delete succeeds", func() {
			It("should return 200 with a success body", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["success"]).To(Equal(true))
				Expect(response["id"]).To(Equal(float64(7)))

				_, argToken, argID := fakeService.DeleteRecipeArgsForCall(0)
				Expect(argToken).To(Equal("some.token"))
				Expect(argID).To(Equal(uint(7)))
			})
		})

		When("the recipe is not owned by the caller", func() {
			BeforeEach(func() {
				fakeService.DeleteRecipeReturns(core.ErrRecipeNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the authorization header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.DeleteRecipeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetUpload", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/uploads/uuid_cake.jpg", nil)
			req.SetPathValue("filename", "uuid_cake.jpg")
		})

		JustBeforeEach(func() {
			rh.HandleGetUpload(w, req)
		})

		When("the image exists", func() {
			BeforeEach(func() {
				fakeService.OpenImageReturns(io.NopCloser(strings.NewReader("image-bytes")), nil)
			})

			It("should stream the content with the right type", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("image-bytes"))
				Expect(w.Header().Get("Content-Type")).To(Equal("image/jpeg"))

				_, argName := fakeService.OpenImageArgsForCall(0)
				Expect(argName).To(Equal("uuid_cake.jpg"))
			})
		})

		When("the image is missing", func() {
			BeforeEach(func() {
				fakeService.OpenImageReturns(nil, core.ErrAssetNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
