package create_passenger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TravelDesk/internal/domain"
	"github.com/m04kA/SMC-TravelDesk/internal/integrations/fileservice"
	"github.com/m04kA/SMC-TravelDesk/internal/validation"
)

const (
	msgPassportImageMissing = "Passport image was not uploaded"
	msgPassportImageInvalid = "Passport image name is invalid"
)

// validateRequest проверяет основную запись и всех сопровождающих и собирает ошибки в одну карту
// Ключи сопровождающих: companions[<key>].<field>
func validateRequest(req *Request, now time.Time) domain.ValidationErrors {
	errs := validation.ValidateRecord(req.Primary, validation.Options{Primary: true, Now: now})

	for i, c := range req.Companions {
		companionErrs := validation.ValidateRecord(c.Record, validation.Options{Primary: false, Now: now})
		for field, msg := range validation.Prefixed(validation.CompanionKey(companionKey(c, i)), companionErrs) {
			errs[field] = msg
		}
	}

	return errs
}

// checkPassportImages проверяет, что загруженные сканы паспортов существуют в файловом сервисе
// Проверяются уже нормализованные записи, те же, что будут сохранены
func (uc *UseCase) checkPassportImages(ctx context.Context, req *Request, primary domain.PersonRecord, companions []domain.PersonRecord) (domain.ValidationErrors, error) {
	errs := domain.ValidationErrors{}

	check := func(field, filename string) error {
		if filename == "" {
			return nil
		}
		exists, err := uc.fileClient.Exists(ctx, filename)
		if errors.Is(err, fileservice.ErrInvalidFilename) {
			errs[field] = msgPassportImageInvalid
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: failed to check passport image %s: %v", ErrInternal, filename, err)
		}
		if !exists {
			errs[field] = msgPassportImageMissing
		}
		return nil
	}

	if err := check(domain.FieldPassportImage, primary.PassportImage); err != nil {
		return nil, err
	}
	for i, c := range req.Companions {
		field := validation.CompanionKey(companionKey(c, i)) + "." + domain.FieldPassportImage
		if err := check(field, companions[i].PassportImage); err != nil {
			return nil, err
		}
	}

	return errs, nil
}

func companionKey(c CompanionInput, index int) string {
	if c.Key != "" {
		return c.Key
	}
	return strconv.Itoa(index)
}
