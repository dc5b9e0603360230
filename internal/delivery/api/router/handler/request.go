package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	"harvest/internal/delivery/api/response"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"harvest/internal/errors"
)

// bindAndValidate binds the request into req and validates it. On failure the 400 response
// has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	return true, nil
}

// uuidParam parses the path parameter name. On failure the 400 response has already been
// written and ok is false.
func uuidParam(c echo.Context, name string) (id uuid.UUID, ok bool, err error) {
	id, parseErr := uuid.Parse(c.Param(name))
	if parseErr != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+name)
	}

	return id, true, nil
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return n
}

// readFiles loads every multipart file sent under field.
func readFiles(c echo.Context, field string) ([]usecase.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	headers := form.File[field]
	files := make([]usecase.FileUpload, 0, len(headers))
	for _, header := range headers {
		file, err := readFile(header)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func readFile(header *multipart.FileHeader) (usecase.FileUpload, error) {
	src, err := header.Open()
	if err != nil {
		return usecase.FileUpload{}, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return usecase.FileUpload{}, errors.Wrap(err, "failed to read uploaded file")
	}

	return usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
