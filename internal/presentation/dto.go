package presentation

import (
	"github.com/ryoma-abe/site-launcher/internal/site"
)

// SiteDTO represents a registered site for presentation
type SiteDTO struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// FromDomainSite converts a domain site to a DTO
func FromDomainSite(index int, s site.Site) SiteDTO {
	return SiteDTO{
		Index: index,
		Key:   s.Key,
		Name:  s.Name,
		URL:   s.URL,
	}
}

// FromDomainSites converts a slice of domain sites to DTOs
func FromDomainSites(sites []site.Site) []SiteDTO {
	dtos := make([]SiteDTO, len(sites))
	for i, s := range sites {
		dtos[i] = FromDomainSite(i, s)
	}
	return dtos
}
