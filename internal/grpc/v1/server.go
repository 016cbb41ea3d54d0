// Package v1 gRPC-интерфейс сервиса коротких ссылок (tinyurl.v1.Shortener).
//
// Сообщения построены на well-known типах protobuf, поэтому сервис
// не требует сгенерированного кода.
package v1

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Totarae/tinyurl/internal/model"
	"github.com/Totarae/tinyurl/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName полное имя gRPC-сервиса.
const ServiceName = "tinyurl.v1.Shortener"

// ShortenerServer методы tinyurl.v1.Shortener.
type ShortenerServer interface {
	Shorten(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Resolve(context.Context, *wrapperspb.Int64Value) (*wrapperspb.StringValue, error)
	Delete(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	UsageCount(context.Context, *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error)
	Health(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

var _ ShortenerServer = (*GRPCServer)(nil)

// GRPCServer реализация tinyurl.v1.Shortener поверх сервисов.
type GRPCServer struct {
	svc     *service.Services
	logger  *zap.Logger
	baseURL string
}

// NewGRPCServer создаёт сервер.
func NewGRPCServer(svc *service.Services, baseURL string, logger *zap.Logger) *GRPCServer {
	return &GRPCServer{svc: svc, baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger}
}

// Register регистрирует сервис на gRPC-сервере.
func (s *GRPCServer) Register(gs grpc.ServiceRegistrar) {
	gs.RegisterService(&ServiceDesc, s)
}

// Shorten сокращает URL и возвращает сохранённую ссылку.
func (s *GRPCServer) Shorten(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	link, err := s.svc.Links.Create(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.linkStruct(link)
}

// Resolve возвращает исходный URL по ID и учитывает переход.
func (s *GRPCServer) Resolve(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.StringValue, error) {
	target, err := s.svc.Redirector.Redirect(ctx, req.GetValue(), peerClient(ctx))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return wrapperspb.String(target), nil
}

// Delete помечает ссылку удалённой.
func (s *GRPCServer) Delete(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	link, err := s.svc.Links.Delete(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.linkStruct(link)
}

// UsageCount число переходов по ссылке в окне по умолчанию.
func (s *GRPCServer) UsageCount(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.Int64Value, error) {
	st, err := s.svc.Usage.Status(ctx, req.GetValue(), 0, usageWindow, false)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return wrapperspb.Int64(int64(st.Count)), nil
}

// Health состояние хранилища, как в /info/ping.
func (s *GRPCServer) Health(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.svc.Health.Check(ctx).DBStatus), nil
}

const usageWindow = 1 << 20

func (s *GRPCServer) linkStruct(link *model.ShortLink) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(map[string]any{
		"id":           link.ID,
		"short_code":   link.ShortCode,
		"short_url":    s.baseURL + "/" + link.ShortCode,
		"original_url": link.OriginalURL,
		"created_at":   link.CreatedAt.Format(time.RFC3339Nano),
		"deleted":      link.Deleted,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode link: %v", err)
	}
	return st, nil
}

func (s *GRPCServer) toStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrGeneratorFailed):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrDuplicate):
		return status.Error(codes.AlreadyExists, "URL already exists")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, model.ErrGone):
		return status.Error(codes.FailedPrecondition, "marked as deleted")
	default:
		s.logger.Error("grpc call failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

// peerClient адрес клиента из контекста gRPC.
func peerClient(ctx context.Context) model.Client {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return model.Client{}
	}
	host, portStr, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return model.Client{Host: p.Addr.String()}
	}
	port, _ := strconv.Atoi(portStr)
	return model.Client{Host: host, Port: port}
}

// unary строит описание метода с декодированием запроса и поддержкой интерсептора.
func unary[Req proto.Message](name string, newReq func() Req, call func(ShortenerServer, context.Context, Req) (proto.Message, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ShortenerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ShortenerServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc описание tinyurl.v1.Shortener.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShortenerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Shorten", func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
			func(s ShortenerServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
				return s.Shorten(ctx, in)
			}),
		unary("Resolve", func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
			func(s ShortenerServer, ctx context.Context, in *wrapperspb.Int64Value) (proto.Message, error) {
				return s.Resolve(ctx, in)
			}),
		unary("Delete", func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
			func(s ShortenerServer, ctx context.Context, in *wrapperspb.Int64Value) (proto.Message, error) {
				return s.Delete(ctx, in)
			}),
		unary("UsageCount", func() *wrapperspb.Int64Value { return new(wrapperspb.Int64Value) },
			func(s ShortenerServer, ctx context.Context, in *wrapperspb.Int64Value) (proto.Message, error) {
				return s.UsageCount(ctx, in)
			}),
		unary("Health", func() *emptypb.Empty { return new(emptypb.Empty) },
			func(s ShortenerServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
				return s.Health(ctx, in)
			}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tinyurl/v1/shortener.proto",
}

// LoggingInterceptor пишет в лог каждый unary-вызов.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("grpc call",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
