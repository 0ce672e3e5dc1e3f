package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"slices"
	"strings"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const MaxLogoSize = 5 << 20

var (
	ErrWorkshopRequired  = fmt.Errorf("%w: workshop name is required", apperr.ErrValidation)
	ErrAddressMissing    = fmt.Errorf("%w: address is required", apperr.ErrValidation)
	ErrInvalidPrice      = fmt.Errorf("%w: price must be greater than zero", apperr.ErrValidation)
	ErrServicesRequired  = fmt.Errorf("%w: select at least one service", apperr.ErrValidation)
	ErrLogoRequired      = fmt.Errorf("%w: upload a logo", apperr.ErrValidation)
	ErrInvalidLogo       = fmt.Errorf("%w: logo must be a png or jpeg image up to 5 MiB", apperr.ErrValidation)
	ErrMediaNotAvailable = errors.New("logo storage is not configured")
)

type MechanicProfileInput struct {
	Name         string
	WorkshopName string
	Phone        string
	Address      string
	Services     []string
	Price        float64
	ImageRef     string
	Active       bool
	Disabled     bool
}

// IMechanicUseCase manages the logged-in mechanic's own listing.
//
// One listing per email: the first submission creates the record, later ones update it.

type IMechanicUseCase interface {
	UpsertMyProfile(ctx context.Context, in MechanicProfileInput) (entities.Mechanic, error)
	GetMyProfile(ctx context.Context) (entities.Mechanic, error)
	UploadLogo(ctx context.Context, logo interfaces.MediaUpload) (string, error)
	ImageURL(ctx context.Context, imageRef string) string
}

type MechanicUseCase struct {
	mechanics interfaces.IMechanicRepository
	directory interfaces.IMechanicDirectory
	identity  interfaces.IIdentityProvider
	media     interfaces.IMediaStorage
}

var _ IMechanicUseCase = (*MechanicUseCase)(nil)

// NewMechanicUseCase wires the listing flow. media may be nil when no bucket is configured.
func NewMechanicUseCase(mechanics interfaces.IMechanicRepository, directory interfaces.IMechanicDirectory, identity interfaces.IIdentityProvider, media interfaces.IMediaStorage) *MechanicUseCase {
	return &MechanicUseCase{mechanics: mechanics, directory: directory, identity: identity, media: media}
}

func (u *MechanicUseCase) UpsertMyProfile(ctx context.Context, in MechanicProfileInput) (entities.Mechanic, error) {
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return entities.Mechanic{}, err
	}
	m, err := buildMechanic(me.Email, in)
	if err != nil {
		return entities.Mechanic{}, err
	}

	existing, found, err := u.findOwnListing(ctx, me.Email)
	switch {
	case err != nil:
	case found:
		m.RecordKey = existing.RecordKey
		m, err = u.mechanics.Update(ctx, m)
	default:
		m, err = u.mechanics.Create(ctx, m)
	}
	if err != nil {
		log.Printf("[mechanic][usecase] upsert failed email=%s err=%v", me.Email, err)
		return entities.Mechanic{}, err
	}
	u.directory.InvalidateMechanics()
	log.Printf("[mechanic][usecase] listing saved email=%s record_key=%s", me.Email, m.RecordKey)
	return m, nil
}

// findOwnListing reads the store directly; the directory snapshot may predate a listing
// written elsewhere and would lead to a second record for the same email.
func (u *MechanicUseCase) findOwnListing(ctx context.Context, email string) (entities.Mechanic, bool, error) {
	all, err := u.mechanics.ListAll(ctx)
	if err != nil {
		return entities.Mechanic{}, false, err
	}
	for _, m := range all {
		if entities.SameEmail(m.Email, email) {
			return m, true, nil
		}
	}
	return entities.Mechanic{}, false, nil
}

func (u *MechanicUseCase) GetMyProfile(ctx context.Context) (entities.Mechanic, error) {
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return entities.Mechanic{}, err
	}
	return u.directory.FindMechanicByEmail(ctx, me.Email)
}

// UploadLogo stores the logo and returns the reference to save as ImageRef.
func (u *MechanicUseCase) UploadLogo(ctx context.Context, logo interfaces.MediaUpload) (string, error) {
	me, err := u.identity.RequireIdentity(ctx)
	if err != nil {
		return "", err
	}
	if u.media == nil {
		return "", ErrMediaNotAvailable
	}
	if logo.Body == nil {
		return "", ErrLogoRequired
	}
	ext := strings.ToLower(filepath.Ext(logo.Filename))
	if logo.Size > MaxLogoSize || !slices.Contains([]string{".png", ".jpg", ".jpeg"}, ext) {
		return "", ErrInvalidLogo
	}
	return u.media.Put(ctx, me.Email, logo)
}

// ImageURL turns a stored ImageRef into something a client can display.
// Resolution failures yield an empty URL.
func (u *MechanicUseCase) ImageURL(ctx context.Context, imageRef string) string {
	if imageRef == "" || u.media == nil {
		return imageRef
	}
	url, err := u.media.URL(ctx, imageRef)
	if err != nil {
		log.Printf("[mechanic][usecase] warning: image url resolution failed ref=%s err=%v", imageRef, err)
		return ""
	}
	return url
}

func buildMechanic(email string, in MechanicProfileInput) (entities.Mechanic, error) {
	name := strings.TrimSpace(in.Name)
	workshop := strings.TrimSpace(in.WorkshopName)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	services := normalizeServices(in.Services)
	imageRef := strings.TrimSpace(in.ImageRef)

	switch {
	case name == "":
		return entities.Mechanic{}, ErrNameRequired
	case workshop == "" && !in.Disabled:
		return entities.Mechanic{}, ErrWorkshopRequired
	case !validPhone(phone):
		return entities.Mechanic{}, ErrInvalidPhone
	case address == "":
		return entities.Mechanic{}, ErrAddressMissing
	case in.Price <= 0:
		return entities.Mechanic{}, ErrInvalidPrice
	case len(services) == 0:
		return entities.Mechanic{}, ErrServicesRequired
	case imageRef == "":
		return entities.Mechanic{}, ErrLogoRequired
	}

	status := entities.MechanicStatusInactive
	if in.Active {
		status = entities.MechanicStatusActive
	}
	var workshopName *string
	if workshop != "" {
		workshopName = &workshop
	}
	return entities.Mechanic{
		Email:        entities.NormalizeEmail(email),
		Name:         name,
		WorkshopName: workshopName,
		Phone:        phone,
		Address:      address,
		Services:     services,
		Price:        in.Price,
		ImageRef:     imageRef,
		Status:       status,
		Disabled:     in.Disabled,
	}, nil
}

func normalizeServices(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
