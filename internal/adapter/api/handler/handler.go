package handler

import (
	"apartio/internal/usecase"
)

var (
	authHandler      *AuthHandler
	apartmentHandler *ApartmentHandler
	galleryHandler   *GalleryHandler
	profileHandler   *ProfileHandler
	contactHandler   *ContactHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	apartmentUseCase *usecase.ApartmentUseCase,
	galleryUseCase *usecase.GalleryUseCase,
	profileUseCase *usecase.ProfileUseCase,
	contactUseCase *usecase.ContactUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	apartmentHandler = NewApartmentHandler(apartmentUseCase)
	galleryHandler = NewGalleryHandler(galleryUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	contactHandler = NewContactHandler(contactUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetApartmentHandler() *ApartmentHandler {
	return apartmentHandler
}

func GetGalleryHandler() *GalleryHandler {
	return galleryHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetContactHandler() *ContactHandler {
	return contactHandler
}
