package sources

import (
	"context"
	"fmt"

	"github.com/rpaes/tankobon/pkg/data"
	"github.com/rpaes/tankobon/pkg/utils"
)

// Wire types for the storefront backend. Field names follow the backend's
// Portuguese contract.

type Cliente struct {
	ID             int    `json:"id"`
	UserName       string `json:"user_name"`
	NomeCompleto   string `json:"nome_completo"`
	Email          string `json:"email"`
	Celular        string `json:"celular"`
	UsuarioAtivo   bool   `json:"usuario_ativo"`
	DataCadastro   string `json:"data_cadastro"`
	DataNascimento string `json:"data_nascimento"`
	Sexo           string `json:"sexo"`
}

func (c *Cliente) ToProfile() data.UserProfile {
	return data.UserProfile{
		ID:        fmt.Sprintf("%d", c.ID),
		Name:      c.NomeCompleto,
		Email:     c.Email,
		Phone:     c.Celular,
		BirthDate: c.DataNascimento,
		Gender:    c.Sexo,
		Active:    c.UsuarioAtivo,
		CreatedAt: c.DataCadastro,
	}
}

type Produto struct {
	ID             int      `json:"id"`
	Nome           string   `json:"nome"`
	Descricao      string   `json:"descricao"`
	Autor          string   `json:"autor"`
	Categoria      string   `json:"categoria"`
	Preco          float64  `json:"preco"`
	PrecoOriginal  *float64 `json:"preco_original,omitempty"`
	EnderecoImagem string   `json:"endereco_imagem"`
	Condicao       string   `json:"condicao"`
	Estoque        int      `json:"estoque"`
}

func (p *Produto) ToManga() *data.Manga {
	return &data.Manga{
		ID:            fmt.Sprintf("%d", p.ID),
		Title:         p.Nome,
		Author:        p.Autor,
		Description:   p.Descricao,
		Price:         p.Preco,
		OriginalPrice: p.PrecoOriginal,
		ImageURL:      p.EnderecoImagem,
		Genre:         genreName(p.Categoria),
		IsNew:         p.Condicao == "NOVO",
	}
}

// genreName maps the backend category enum to the display genre. Unknown
// values fall back to "Aventura".
func genreName(categoria string) string {
	switch categoria {
	case "ACAO":
		return "Ação"
	case "AVENTURA":
		return "Aventura"
	case "COMEDIA":
		return "Comédia"
	case "DRAMA":
		return "Drama"
	case "FICCAO_CIENTIFICA":
		return "Ficção Científica"
	case "FANTASIA":
		return "Fantasia"
	case "TERROR":
		return "Terror"
	default:
		return "Aventura"
	}
}

type authResponse struct {
	Token   string   `json:"token"`
	Cliente Cliente  `json:"cliente"`
	Roles   []string `json:"roles"`
}

func (r *authResponse) toSession() *Session {
	return &Session{
		Token:   r.Token,
		Profile: r.Cliente.ToProfile(),
		Roles:   r.Roles,
	}
}

type Backend struct {
	api *utils.API
}

func NewBackend(baseURL string, token utils.TokenFunc) *Backend {
	return &Backend{api: utils.NewAPI(baseURL, token)}
}

func (b *Backend) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := b.api.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

func (b *Backend) Register(ctx context.Context, reg Registration) (*Session, error) {
	body := map[string]string{
		"user_name":       reg.Email,
		"nome_completo":   reg.Name,
		"email":           reg.Email,
		"senha":           reg.Password,
		"data_nascimento": reg.BirthDate,
		"sexo":            reg.Gender,
		"cpf":             reg.CPF,
		"celular":         reg.Phone,
	}
	var resp authResponse
	if err := b.api.Post(ctx, "/auth/cadastro", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

func (b *Backend) Catalog(ctx context.Context) ([]data.Manga, error) {
	var page struct {
		PageItems     []Produto `json:"page_items"`
		PageNumber    int       `json:"page_number"`
		NumberOfPages int       `json:"number_of_pages"`
	}
	if err := b.api.Get(ctx, "/produtos", nil, &page); err != nil {
		return nil, err
	}
	out := make([]data.Manga, len(page.PageItems))
	for i, produto := range page.PageItems {
		out[i] = *produto.ToManga()
	}
	return out, nil
}
