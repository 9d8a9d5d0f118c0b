package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabbatinimodas/backoffice-api/internal/application/auth"
	"github.com/sabbatinimodas/backoffice-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	ProdutoUC *usecase.ProdutoUseCase
	VendaUC   *usecase.VendaUseCase
	CaixaUC   *usecase.CaixaUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra as rotas da API. Rotas fixas antes das parametrizadas,
// senão /todos cai em /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/cadastro", authHandler.Cadastro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Criar)
	clientes.Get("/", clienteHandler.ListarAtivos)
	clientes.Get("/todos", clienteHandler.ListarTodos)
	clientes.Get("/buscar", clienteHandler.BuscarPorNome)
	clientes.Get("/estatisticas", clienteHandler.Estatisticas)
	clientes.Get("/cpf/:cpf", clienteHandler.BuscarPorCPF)
	clientes.Get("/:id", clienteHandler.BuscarPorID)
	clientes.Put("/:id/ativar", clienteHandler.Ativar)
	clientes.Put("/:id/desativar", clienteHandler.Desativar)
	clientes.Put("/:id", clienteHandler.Atualizar)
	clientes.Delete("/:id", clienteHandler.Remover)

	// Produtos e estoque
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.ListarAtivos)
	produtos.Get("/todos", produtoHandler.ListarTodos)
	produtos.Get("/buscar", produtoHandler.BuscarPorNome)
	produtos.Get("/estoque-baixo", produtoHandler.ListarEstoqueBaixo)
	produtos.Get("/categorias", produtoHandler.ListarCategorias)
	produtos.Get("/marcas", produtoHandler.ListarMarcas)
	produtos.Get("/estatisticas", produtoHandler.Estatisticas)
	produtos.Get("/categoria/:categoria", produtoHandler.ListarPorCategoria)
	produtos.Get("/marca/:marca", produtoHandler.ListarPorMarca)
	produtos.Get("/codigo-barras/:codigo", produtoHandler.BuscarPorCodigoBarras)
	produtos.Get("/:id", produtoHandler.BuscarPorID)
	produtos.Put("/:id/estoque", produtoHandler.AtualizarEstoque)
	produtos.Put("/:id/ativar", produtoHandler.Ativar)
	produtos.Put("/:id/desativar", produtoHandler.Desativar)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Delete("/:id", produtoHandler.Remover)

	// Vendas
	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendas.Post("/", vendaHandler.Criar)
	vendas.Get("/", vendaHandler.Listar)
	vendas.Get("/periodo", vendaHandler.ListarPorPeriodo)
	vendas.Get("/estatisticas", vendaHandler.Estatisticas)
	vendas.Get("/status/:status", vendaHandler.ListarPorStatus)
	vendas.Get("/cliente/:clienteId", vendaHandler.ListarPorCliente)
	vendas.Get("/:id/recibo", vendaHandler.Recibo)
	vendas.Get("/:id", vendaHandler.BuscarPorID)
	vendas.Put("/:id/cancelar", vendaHandler.Cancelar)

	// Caixa
	caixa := protected.Group("/caixa")
	caixaHandler := NewCaixaHandler(deps.CaixaUC)
	caixa.Post("/", caixaHandler.Registrar)
	caixa.Get("/", caixaHandler.Listar)
	caixa.Get("/saldo", caixaHandler.Saldo)
	caixa.Get("/buscar", caixaHandler.BuscarPorDescricao)
	caixa.Get("/periodo", caixaHandler.ListarPorPeriodo)
	caixa.Get("/tipo/:tipo", caixaHandler.ListarPorTipo)
}
